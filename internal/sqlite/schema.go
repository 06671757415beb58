package sqlite

// Schema DDL for the real_estate table. Name uniqueness is enforced here,
// at write time, not by the view layer.
const createRealEstate = `CREATE TABLE IF NOT EXISTS real_estate (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    address TEXT NOT NULL,
    zip_code INTEGER NOT NULL DEFAULT 0,
    price REAL NOT NULL,
    room_count INTEGER NOT NULL,
    owner TEXT NOT NULL
);`
