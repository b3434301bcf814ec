package model

// All lists every table owned by the service, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserProvider{},
		&Brand{},
		&Theme{},
		&Product{},
		&ChatSession{},
		&ChatMessage{},
		&GeneratedContent{},
		&SocialAccount{},
		&SocialPost{},
		&UserSettings{},
	}
}
