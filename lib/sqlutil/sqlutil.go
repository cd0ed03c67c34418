package sqlutil

import (
	"database/sql"
	"fmt"
	"strings"
)

// Struct describes where the vehicle database lives. When Url is empty
// the File is opened through the embedded sqlite driver, otherwise the
// libsql driver connects to the remote database.
type Struct struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

// OpenDB opens the configured database and applies `schema` to it.
// Applying the same schema twice is not an error.
func (config Struct) OpenDB(schema string) (*sql.DB, error) {
	db, err := config.open()
	if err != nil {
		return nil, err
	}
	err = ApplySchema(db, schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (config Struct) open() (*sql.DB, error) {
	if config.Url == "" {
		file := config.File
		if file == "" {
			file = ":memory:"
		}
		return sql.Open("sqlite", file)
	}

	url := config.Url
	if config.AuthToken != "" {
		url = fmt.Sprintf("%s?authToken=%s", url, config.AuthToken)
	}
	return sql.Open("libsql", url)
}

func ApplySchema(db *sql.DB, schema string) error {
	_, err := db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return err
	}
	return nil
}
