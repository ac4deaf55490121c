// seed genera un script SQL con datos de demostración (clientes y productos)
// a partir de los fixtures JSON en cmd/seed/fixtures.
//
// Uso: go run ./cmd/seed [directorio-de-fixtures]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type customerFixture struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type productFixture struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

func main() {
	fixturesDir := filepath.Join("cmd", "seed", "fixtures")
	if len(os.Args) > 1 {
		fixturesDir = os.Args[1]
	}

	var customers []customerFixture
	if err := readJSON(filepath.Join(fixturesDir, "customers.json"), &customers); err != nil {
		fmt.Fprintf(os.Stderr, "Leer customers.json: %v\n", err)
		os.Exit(1)
	}
	var products []productFixture
	if err := readJSON(filepath.Join(fixturesDir, "products.json"), &products); err != nil {
		fmt.Fprintf(os.Stderr, "Leer products.json: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración del CRM\n")
	out.WriteString("-- Generado desde cmd/seed/fixtures\n\n")

	out.WriteString("-- 1. Clientes\n")
	for _, c := range customers {
		fmt.Fprintf(out, "INSERT INTO customers (name, email, phone, notes) VALUES ('%s', '%s', '%s', '%s');\n",
			escapeSQL(c.Name), escapeSQL(c.Email), escapeSQL(c.Phone), escapeSQL(c.Notes))
	}

	out.WriteString("\n-- 2. Productos\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (name, price, stock, low_stock_threshold) VALUES ('%s', %.2f, %d, %d);\n",
			escapeSQL(p.Name), p.Price, p.Stock, p.LowStockThreshold)
	}

	fmt.Printf("Generado %s: %d clientes, %d productos\n", outPath, len(customers), len(products))
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
