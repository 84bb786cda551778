package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The module owns only the two attribute tables. The platform's
// product_category / product / product_category_product tables are read but
// never created here.
var steps = []migrationStep{
	{
		Name: "create_table_category_custom_attribute",
		SQL: `CREATE TABLE IF NOT EXISTS category_custom_attribute (
  id          TEXT        NOT NULL,
  key         TEXT        NOT NULL,
  label       TEXT        NOT NULL DEFAULT '',
  category_id TEXT        NOT NULL,
  type        TEXT        NOT NULL DEFAULT 'text',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at  TIMESTAMPTZ NULL,
  CONSTRAINT category_custom_attribute_pkey PRIMARY KEY (id)
);`,
	},
	{
		Name: "create_index_category_custom_attribute_deleted_at",
		SQL: `CREATE INDEX IF NOT EXISTS "IDX_category_custom_attribute_deleted_at"
ON category_custom_attribute (deleted_at) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_table_product_custom_attribute",
		SQL: `CREATE TABLE IF NOT EXISTS product_custom_attribute (
  id                           TEXT        NOT NULL,
  product_id                   TEXT        NOT NULL,
  value                        TEXT        NOT NULL,
  category_custom_attribute_id TEXT        NOT NULL,
  is_visible                   BOOLEAN     NOT NULL DEFAULT true,
  options                      TEXT        NULL,
  created_at                   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at                   TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at                   TIMESTAMPTZ NULL,
  CONSTRAINT product_custom_attribute_pkey PRIMARY KEY (id)
);`,
	},
	{
		Name: "create_index_product_custom_attribute_deleted_at",
		SQL: `CREATE INDEX IF NOT EXISTS "IDX_product_custom_attribute_deleted_at"
ON product_custom_attribute (deleted_at) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_product_custom_attribute_category_custom_attribute_id",
		SQL: `CREATE INDEX IF NOT EXISTS "IDX_product_custom_attribute_category_custom_attribute_id"
ON product_custom_attribute (category_custom_attribute_id) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "add_fk_product_custom_attribute_category_custom_attribute",
		SQL: `DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint
    WHERE conname = 'product_custom_attribute_category_custom_attribute_id_foreign'
  ) THEN
    ALTER TABLE product_custom_attribute
    ADD CONSTRAINT product_custom_attribute_category_custom_attribute_id_foreign
    FOREIGN KEY (category_custom_attribute_id)
    REFERENCES category_custom_attribute (id)
    ON UPDATE CASCADE ON DELETE CASCADE;
  END IF;
END$$;`,
	},
}

// EnsureMigrated checks if the 'category_custom_attribute' table exists and
// runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.category_custom_attribute') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
