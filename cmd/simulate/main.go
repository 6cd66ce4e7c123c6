package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Generates sample CSV files for the batch loader: customers, products,
// landing pages, A/B tests and results, with sequential ids so later tables
// can reference earlier ones.

var (
	firstNames = []string{"Alice", "Bob", "Charlie", "Diana", "Evan", "Fay", "George", "Hannah", "Ivan", "Jane"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Martinez", "Anderson"}
	domains    = []string{"gmail.com", "yahoo.com", "outlook.com"}

	productPool = []struct{ name, category string }{
		{"Smartphone", "Electronics"},
		{"Laptop", "Electronics"},
		{"Blender", "Home Appliances"},
		{"Air Conditioner", "Home Appliances"},
		{"Jacket", "Fashion"},
		{"Running Shoes", "Sports"},
		{"Perfume", "Beauty"},
		{"Novel", "Books"},
	}
	descriptions = []string{"High-quality", "Eco-friendly", "Portable", "Ergonomic", "Energy-saving", "Affordable", "Durable", "Stylish", "Innovative", "Compact"}
)

const (
	numCustomers    = 50
	numProducts     = 20
	numLandingPages = 40
	numABTests      = 20
	numResults      = 100
)

func main() {
	dataDir := flag.String("data", "data", "output directory for CSV files")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "create data directory:", err)
		os.Exit(1)
	}

	writeCSV(*dataDir, "customers.csv", customerRows(rng))
	writeCSV(*dataDir, "products.csv", productRows(rng))
	writeCSV(*dataDir, "landing_pages.csv", landingPageRows(rng))
	writeCSV(*dataDir, "ab_testing.csv", abTestRows(rng))
	writeCSV(*dataDir, "results.csv", resultRows(rng))

	fmt.Println("sample data written to", *dataDir)
}

func customerRows(rng *rand.Rand) [][]string {
	rows := [][]string{{"customer_id", "name", "email"}}
	for i := 1; i <= numCustomers; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(first), strings.ToLower(last), i, domains[rng.Intn(len(domains))])
		rows = append(rows, []string{strconv.Itoa(i), first + " " + last, email})
	}
	return rows
}

func productRows(rng *rand.Rand) [][]string {
	rows := [][]string{{"product_id", "product_name", "category", "description", "logo_url", "release_date"}}
	for i := 1; i <= numProducts; i++ {
		p := productPool[rng.Intn(len(productPool))]
		name := fmt.Sprintf("%s Model %d", p.name, 100+rng.Intn(900))
		desc := descriptions[rng.Intn(len(descriptions))] + " " + p.name
		logo := fmt.Sprintf("http://example.com/%s_%d.png",
			strings.ReplaceAll(strings.ToLower(p.name), " ", "_"), i)
		rows = append(rows, []string{
			strconv.Itoa(i), name, p.category, desc, logo,
			randomDate(rng, 2022, 2023),
		})
	}
	return rows
}

func landingPageRows(rng *rand.Rand) [][]string {
	rows := [][]string{{"landing_page_id", "variant_type", "page_url", "product_id"}}
	for i := 1; i <= numLandingPages; i++ {
		variant := "A"
		if rng.Intn(2) == 1 {
			variant = "B"
		}
		rows = append(rows, []string{
			strconv.Itoa(i), variant,
			fmt.Sprintf("http://example.com/landing_%d", i),
			strconv.Itoa(1 + rng.Intn(numProducts)),
		})
	}
	return rows
}

func abTestRows(rng *rand.Rand) [][]string {
	rows := [][]string{{"test_id", "test_name", "start_date", "end_date", "landing_page_id", "product_id"}}
	for i := 1; i <= numABTests; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i),
			fmt.Sprintf("Campaign_%d", i),
			randomDate(rng, 2022, 2023),
			randomDate(rng, 2023, 2023),
			strconv.Itoa(1 + rng.Intn(numLandingPages)),
			strconv.Itoa(1 + rng.Intn(numProducts)),
		})
	}
	return rows
}

func resultRows(rng *rand.Rand) [][]string {
	rows := [][]string{{"results_id", "click_through_rate", "conversion_rate", "bounce_rate", "test_id"}}
	for i := 1; i <= numResults; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i),
			rate(rng, 0.01, 0.3),
			rate(rng, 0.01, 0.25),
			rate(rng, 0.2, 0.7),
			strconv.Itoa(1 + rng.Intn(numABTests)),
		})
	}
	return rows
}

func randomDate(rng *rand.Rand, fromYear, toYear int) string {
	start := time.Date(fromYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days+1)).Format("2006-01-02")
}

func rate(rng *rand.Rand, lo, hi float64) string {
	return strconv.FormatFloat(lo+rng.Float64()*(hi-lo), 'f', 2, 64)
}

func writeCSV(dir, name string, rows [][]string) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create", path+":", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		fmt.Fprintln(os.Stderr, "write", path+":", err)
		os.Exit(1)
	}
}
