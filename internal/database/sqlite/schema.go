package sqlite

// Schema for the posting store. postings_fts is an external-content
// FTS5 index over postings; it holds no copy of the text and is
// maintained by the repository, which commits every row mutation and
// its index write in one transaction. A reader can therefore never
// observe a posting without its search document or a document for a
// deleted posting.
//
// job_id is UNIQUE but nullable: rows scraped from URLs without a job id
// can repeat, rows with one cannot.
const schema = `
CREATE TABLE IF NOT EXISTS postings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  job_id TEXT UNIQUE,
  title TEXT NOT NULL DEFAULT '',
  company TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  date_posted TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  scraped_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE VIRTUAL TABLE IF NOT EXISTS postings_fts USING fts5(
  title, company, location, description, url,
  content='postings',
  content_rowid='id'
);

CREATE TABLE IF NOT EXISTS scrape_runs (
  id TEXT PRIMARY KEY,
  profile TEXT NOT NULL DEFAULT '',
  started_at TEXT NOT NULL,
  finished_at TEXT,
  status TEXT NOT NULL DEFAULT 'running',
  attempted INTEGER NOT NULL DEFAULT 0,
  inserted INTEGER NOT NULL DEFAULT 0,
  skipped INTEGER NOT NULL DEFAULT 0
);
`
