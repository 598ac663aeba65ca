package main

import (
	"log"
	"os"

	"kindalike-be/internal/model"
	"kindalike-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.UserPreference{},
		&model.ChatSession{},
		&model.ChatMessage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 4. Post-Migration: trigger keeping chat_sessions.last_message_at in sync
	// with message inserts even when rows come from outside the application.
	postSQL := []string{
		`CREATE OR REPLACE FUNCTION touch_session_last_message() RETURNS trigger AS $$
BEGIN
    UPDATE chat_sessions SET last_message_at = NEW.created_at WHERE id = NEW.session_id;
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;`,
		`DROP TRIGGER IF EXISTS chat_messages_touch_session ON chat_messages;`,
		`CREATE TRIGGER chat_messages_touch_session
AFTER INSERT ON chat_messages
FOR EACH ROW EXECUTE FUNCTION touch_session_last_message();`,
	}

	for _, sql := range postSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v. Continuing...", err)
		}
	}

	log.Println("Migration complete.")
}
