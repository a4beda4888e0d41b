package cluster

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/pkg/errors"
)

const (
	postgresSchemataQuery = `SELECT schema_name FROM information_schema.schemata WHERE schema_name NOT LIKE 'pg_%' AND schema_name <> 'information_schema' ORDER BY schema_name`
	postgresTablesQuery   = `SELECT table_schema, table_name FROM information_schema.tables WHERE table_schema NOT LIKE 'pg_%' AND table_schema <> 'information_schema' AND table_type = 'BASE TABLE' ORDER BY table_schema, table_name LIMIT 2000`
)

// PostgresCatalogGet inventories the warehouse over information_schema.
// The section is all-or-nothing: any failure reports unavailable with
// empty lists rather than a partial inventory.
func (p *Provider) PostgresCatalogGet() *structs.PostgresCatalog {
	log := p.log().At("PostgresCatalogGet").Start()

	creds := p.postgresCredentials()
	if creds.Missing() {
		log.Logf("error=%q", "missing credentials")
		return postgresUnavailable("missing credentials")
	}

	ctx, cancel := p.callContext()
	defer cancel()

	db, err := sql.Open("postgres", p.postgresURL(creds))
	if err != nil {
		log.Error(err)
		return postgresUnavailable(err.Error())
	}
	defer db.Close()

	schemas, err := postgresColumn(ctx, db, postgresSchemataQuery)
	if err != nil {
		log.Error(err)
		return postgresUnavailable(err.Error())
	}

	tables, err := postgresTables(ctx, db)
	if err != nil {
		log.Error(err)
		return postgresUnavailable(err.Error())
	}

	log.Successf("schemas=%d tables=%d", len(schemas), len(tables))

	return &structs.PostgresCatalog{
		Available: true,
		Schemas:   schemas,
		Tables:    tables,
	}
}

func (p *Provider) postgresURL(creds structs.Credentials) string {
	d := p.Timeout
	if d <= 0 {
		d = defaultTimeout
	}

	cs := int(d / time.Second)
	if cs < 1 {
		cs = 1
	}

	q := url.Values{}
	q.Set("connect_timeout", fmt.Sprintf("%d", cs))
	q.Set("sslmode", "disable")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(creds.Access, creds.Secret),
		Host:     fmt.Sprintf("%s:%s", p.PostgresHost, p.PostgresPort),
		Path:     p.PostgresDatabase,
		RawQuery: q.Encode(),
	}

	return u.String()
}

func postgresColumn(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	vs := []string{}

	for rows.Next() {
		var v string

		if err := rows.Scan(&v); err != nil {
			return nil, errors.WithStack(err)
		}

		vs = append(vs, v)
	}

	return vs, errors.WithStack(rows.Err())
}

func postgresTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, postgresTablesQuery)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	ts := []string{}

	for rows.Next() {
		var schema, name string

		if err := rows.Scan(&schema, &name); err != nil {
			return nil, errors.WithStack(err)
		}

		ts = append(ts, fmt.Sprintf("%s.%s", schema, name))
	}

	return ts, errors.WithStack(rows.Err())
}

func postgresUnavailable(message string) *structs.PostgresCatalog {
	return &structs.PostgresCatalog{
		Available: false,
		Schemas:   []string{},
		Tables:    []string{},
		Error:     message,
	}
}
