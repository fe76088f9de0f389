package models

// Param is a row of the params key/value store. Values are stored as text
// and parsed according to Type.
type Param struct {
	Key   string `db:"key"`
	Type  string `db:"type"`
	Value string `db:"value"`
	AuditFields
}
