package model

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Council{},
		&Message{},
		&Memory{},
	}
}
