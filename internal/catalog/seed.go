package catalog

import "dealership/internal/models"

type seedModel struct {
	Name string
	Type models.CarType
	Year int
}

type seedMake struct {
	Name        string
	Description string
	Country     string
	Models      []seedModel
}

// стартовый каталог, заливается при первом обращении к пустой БД
var seedData = []seedMake{
	{
		Name: "NISSAN", Description: "Great cars. Japanese technology", Country: "Japan",
		Models: []seedModel{
			{"Pathfinder", models.CarSUV, 2023},
			{"Qashqai", models.CarSUV, 2023},
			{"XTRAIL", models.CarSUV, 2023},
		},
	},
	{
		Name: "Mercedes", Description: "Great cars. German technology", Country: "Germany",
		Models: []seedModel{
			{"A-Class", models.CarSedan, 2023},
			{"C-Class", models.CarSedan, 2023},
			{"E-Class", models.CarSedan, 2023},
		},
	},
	{
		Name: "Audi", Description: "Great cars. German technology", Country: "Germany",
		Models: []seedModel{
			{"A4", models.CarSedan, 2023},
			{"A5", models.CarCoupe, 2023},
			{"A6", models.CarWagon, 2023},
		},
	},
	{
		Name: "Kia", Description: "Great cars. Korean technology", Country: "South Korea",
		Models: []seedModel{
			{"Sorrento", models.CarSUV, 2023},
			{"Carnival", models.CarSUV, 2023},
			{"Cerato", models.CarSedan, 2023},
		},
	},
	{
		Name: "Toyota", Description: "Great cars. Japanese technology", Country: "Japan",
		Models: []seedModel{
			{"Corolla", models.CarSedan, 2023},
			{"Camry", models.CarSedan, 2023},
			{"Kluger", models.CarSUV, 2023},
		},
	},
}
