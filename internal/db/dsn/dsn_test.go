package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name  string
		build func(*config.DB) string
		cfg   config.DB
		want  string
	}{
		{
			name:  "mysql default extras",
			build: MySQL,
			cfg: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "db",
				Port:       3306,
				User:       "madrasa",
				Password:   "pw",
				Name:       "site",
			},
			want: "madrasa:pw@tcp(db:3306)/site?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name:  "mysql custom extras",
			build: MySQL,
			cfg: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "db",
				Port:       3306,
				User:       "madrasa",
				Password:   "pw",
				Name:       "site",
				Extras:     "parseTime=True",
			},
			want: "madrasa:pw@tcp(db:3306)/site?parseTime=True",
		},
		{
			name:  "postgres",
			build: Postgres,
			cfg: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "pg",
				Port:       5432,
				User:       "madrasa",
				Password:   "pw",
				Name:       "site",
				SSLMode:    "require",
			},
			want: "host=pg port=5432 user=madrasa password=pw dbname=site sslmode=require",
		},
		{
			name:  "postgres extras and default sslmode",
			build: Postgres,
			cfg: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "pg",
				Port:       5432,
				User:       "madrasa",
				Password:   "pw",
				Name:       "site",
				Extras:     "TimeZone=Asia/Dhaka",
			},
			want: "host=pg port=5432 user=madrasa password=pw dbname=site sslmode=disable TimeZone=Asia/Dhaka",
		},
		{
			name:  "sqlite path",
			build: SQLite,
			cfg:   config.DB{GormEngine: config.EngineSQLite, Path: "./data/madrasa.db"},
			want:  "./data/madrasa.db",
		},
		{
			name:  "sqlite memory",
			build: SQLite,
			cfg:   config.DB{GormEngine: config.EngineSQLite},
			want:  ":memory:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build(&tt.cfg))
		})
	}
}

func TestPostgresURI(t *testing.T) {
	cfg := config.DB{
		Host:     "pg",
		Port:     5432,
		User:     "madrasa",
		Password: "p@ss word",
		Name:     "site",
	}

	assert.Equal(t, "postgres://madrasa:p%40ss%20word@pg:5432/site?sslmode=disable", PostgresURI(&cfg))
}
