// Package main is the entry point for the inventory service.
//
// @title Inventory API
// @version 1.0.0
// @description RESTful API for managing the product catalog of an online store. Supports full CRUD operations.
//
// @BasePath /
// @schemes http https
package main

import "github.com/JustinArce/MicroservicioAlmacen/cmd/inventory/cmd"

func main() {
	cmd.Execute()
}
