// @title        Storefront API
// @version      1.0
// @description  Multi-role storefront backend: public catalog, vendor product management with admin approval, carts and orders.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
