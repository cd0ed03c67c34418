package commands

import (
	"wtdata-backend/lib/sqlutil"
)

type Config struct {
	// base url of the wiki, defaults to the live site
	BaseUrl  string         `json:"baseUrl"`
	Database sqlutil.Struct `json:"database"`
	Workers  int            `json:"workers"`
	Port     int            `json:"port"`
}
