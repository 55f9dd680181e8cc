package database

import "quill/internal/models"

// PersistentModels returns every model that participates in schema migration,
// ordered so referenced tables are created before the tables that point at them.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	}
}
