// Package cmd/tably provides the tably CLI — a terminal client for the
// restaurant ordering backend.
//
// Install:
//
//	go install github.com/chriskampolis/tably/cmd/tably@latest
//
// Typical session:
//
//	tably login                 # exchange credentials for tokens
//	tably menu                  # browse the menu, grouped by category
//	tably order --table 3       # interactive order screen for table 3
//	tably completed-orders      # list completed orders
//	tably logout
//
// Manager administration:
//
//	tably menu-items list|create|update|delete
//	tably users list|create|update|delete
//
// Configuration comes from config/app.json and .env in the working
// directory (API_BASE_URL, CREDENTIALS_DIR, APP_ENV, HTTP_TIMEOUT).
package main
