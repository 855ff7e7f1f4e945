package warehouse

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rotisserie/eris"
	"github.com/snowflakedb/gosnowflake"
	domainWarehouse "github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/repository/config"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLClient runs each query on its own connection, which is opened before
// the query and closed once the rows are read.
type SQLClient struct {
	driverName  string
	dsn         string
	dollarStyle bool
	logger      *zap.Logger
}

type ClientFactory struct{}

func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

func (f *ClientFactory) NewClient(cfg config.Warehouse, logger *zap.Logger) (domainWarehouse.Client, error) {
	client, err := NewSQLClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewSQLClient(cfg config.Warehouse, logger *zap.Logger) (*SQLClient, error) {
	switch cfg.Driver {
	case config.DriverSnowflake, "":
		dsn, err := gosnowflake.DSN(&gosnowflake.Config{
			Account:   cfg.Account,
			User:      cfg.User,
			Password:  cfg.Password,
			Warehouse: cfg.Warehouse,
			Database:  cfg.Database,
			Schema:    cfg.Schema,
		})
		if err != nil {
			return nil, eris.Wrap(err, "failed to build snowflake DSN")
		}
		return &SQLClient{driverName: "snowflake", dsn: dsn, logger: logger}, nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, eris.New("warehouse dsn is required for the postgres driver (WAREHOUSE_DSN)")
		}
		return &SQLClient{driverName: "pgx", dsn: cfg.DSN, dollarStyle: true, logger: logger}, nil
	case config.DriverSqlite:
		if cfg.DSN == "" {
			return nil, eris.New("warehouse dsn is required for the sqlite driver (WAREHOUSE_DSN)")
		}
		return &SQLClient{driverName: "sqlite", dsn: cfg.DSN, logger: logger}, nil
	default:
		return nil, eris.Errorf("unsupported warehouse driver: %s", cfg.Driver)
	}
}

func (c *SQLClient) Query(ctx context.Context, query string, args ...any) (domainWarehouse.Table, error) {
	if c.dollarStyle {
		query = rebindDollar(query)
	}

	c.logger.Debug("Running warehouse query",
		zap.String("driver", c.driverName),
		zap.Int("args", len(args)))

	db, err := sql.Open(c.driverName, c.dsn)
	if err != nil {
		return domainWarehouse.Table{}, eris.Wrap(err, "failed to open warehouse connection")
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return domainWarehouse.Table{}, eris.Wrap(err, "failed to run query")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return domainWarehouse.Table{}, eris.Wrap(err, "failed to read columns")
	}

	table := domainWarehouse.Table{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return domainWarehouse.Table{}, eris.Wrap(err, "failed to scan row")
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return domainWarehouse.Table{}, eris.Wrap(err, "failed to iterate rows")
	}

	return table, nil
}

// rebindDollar rewrites "?" placeholders to "$1", "$2", ... outside of quoted literals.
func rebindDollar(query string) string {
	var sb strings.Builder
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			sb.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			sb.WriteString("$" + strconv.Itoa(n))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
