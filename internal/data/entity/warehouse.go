package entity

type Warehouse struct {
	Base
	Name     string `db:"name"`
	Address  string `db:"address"`
	Province string `db:"province"`
	City     string `db:"city"`
	District string `db:"district"`
}
