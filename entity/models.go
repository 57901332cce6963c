package entity

// Models lists every persisted model in migration order.
func Models() []any {
	return []any{
		&Customer{},
		&Book{},
		&Purchase{},
	}
}
