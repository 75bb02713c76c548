package models

// AdminCredentials — единственная учётная запись администратора,
// хранится в courses.json под ключом "admin".
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
