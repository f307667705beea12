package conf

type Local struct {
	SeedDemoData bool
}
