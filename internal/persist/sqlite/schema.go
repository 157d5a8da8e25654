package sqlite

// snapshotSchema holds the full student snapshot plus format version
// metadata. The position column preserves collection order across the
// round trip.
const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshot_meta (
    version INTEGER NOT NULL,
    written_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS students (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    roll_number TEXT NOT NULL,
    course TEXT NOT NULL,
    grade INTEGER NOT NULL CHECK (grade BETWEEN 0 AND 5)
);
`
