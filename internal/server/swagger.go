package server

//go:generate swag init -g internal/server/swagger.go -o docs

// @title Scandeck API
// @version 0.1
// @description Interactive documentation for the scandeck scan execution API.
// @contact.name Scandeck Maintainers
// @contact.url https://github.com/volkh4n/scandeck
// @BasePath /
