package main

import (
	"fmt"
	"os"
	"strings"

	"museum-booking/config"
	"museum-booking/database"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate            - Run migrations and create indexes")
		fmt.Println("  go run tools/migrate.go generate file.sql  - Write the extra index statements to a file")
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("❌ Invalid configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.StorageDriver == config.DriverMongo {
			fmt.Println("ℹ️ MongoDB indexes are ensured at server start-up; nothing to migrate")
			return
		}

		fmt.Println("🚀 Running database migrations...")
		db, err := database.InitDB(cfg)
		if err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		fmt.Println("✅ Migration completed successfully!")

	case "generate":
		if len(os.Args) < 3 {
			fmt.Println("Please provide a filename for the migration file")
			fmt.Println("Example: go run tools/migrate.go generate migration.sql")
			return
		}

		filename := os.Args[2]
		fmt.Printf("📝 Generating migration file: %s\n", filename)

		content := "-- Indexes created after auto migration\n" + strings.Join(database.IndexStatements, ";\n") + ";\n"
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			fmt.Printf("❌ Failed to generate migration file: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, generate")
	}
}
