package mysql

// Schema statements, applied one by one by EnsureSchema. The seed user
// mirrors the fixture account the front-end logs in with.

var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS users (
  user_id    VARCHAR(64)  NOT NULL,
  first_name VARCHAR(64)  NULL,
  last_name  VARCHAR(64)  NULL,
  password   VARCHAR(128) NULL,
  PRIMARY KEY (user_id)
)`,
	`CREATE TABLE IF NOT EXISTS items (
  item_id     VARCHAR(64)  NOT NULL,
  name        VARCHAR(255) NULL,
  description TEXT         NULL,
  url         VARCHAR(512) NULL,
  image_url   VARCHAR(512) NULL,
  start_date  VARCHAR(32)  NULL,
  price_range VARCHAR(32)  NULL,
  lat         DOUBLE       NULL,
  lon         DOUBLE       NULL,
  address     VARCHAR(255) NULL,
  city        VARCHAR(128) NULL,
  state       VARCHAR(128) NULL,
  country     VARCHAR(128) NULL,
  zip         VARCHAR(32)  NULL,
  updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (item_id)
)`,
	`CREATE TABLE IF NOT EXISTS item_categories (
  item_id  VARCHAR(64)  NOT NULL,
  category VARCHAR(128) NOT NULL,
  PRIMARY KEY (item_id, category),
  CONSTRAINT fk_cat_item FOREIGN KEY (item_id) REFERENCES items (item_id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS favorites (
  user_id    VARCHAR(64) NOT NULL,
  item_id    VARCHAR(64) NOT NULL,
  created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (user_id, item_id)
)`,
	`INSERT INTO users (user_id, first_name, last_name, password)
VALUES ('1111', 'John', 'Smith', '3229c1097c00d282d586be050')
ON DUPLICATE KEY UPDATE user_id = user_id`,
}

const upsertItemSQL = `
INSERT INTO items
  (item_id, name, description, url, image_url, start_date, price_range, lat, lon, address, city, state, country, zip)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  description = VALUES(description),
  url         = VALUES(url),
  image_url   = VALUES(image_url),
  start_date  = VALUES(start_date),
  price_range = VALUES(price_range),
  lat         = VALUES(lat),
  lon         = VALUES(lon),
  address     = VALUES(address),
  city        = VALUES(city),
  state       = VALUES(state),
  country     = VALUES(country),
  zip         = VALUES(zip),
  updated_at  = CURRENT_TIMESTAMP
`

const insertCategorySQL = `
INSERT IGNORE INTO item_categories (item_id, category) VALUES (?, ?)
`

const favoriteIDsSQL = `
SELECT item_id FROM favorites WHERE user_id = ?
`

const categoriesSQL = `
SELECT category FROM item_categories WHERE item_id = ?
`

const favoriteItemsSQL = `
SELECT
  i.item_id, i.name, i.description, i.url, i.image_url,
  i.start_date, i.price_range, i.lat, i.lon,
  i.address, i.city, i.state, i.country, i.zip
FROM favorites f
JOIN items i ON i.item_id = f.item_id
WHERE f.user_id = ?
ORDER BY f.created_at, i.item_id
`

const insertFavoriteSQL = `
INSERT IGNORE INTO favorites (user_id, item_id) VALUES (?, ?)
`

const deleteFavoriteSQL = `
DELETE FROM favorites WHERE user_id = ? AND item_id = ?
`
