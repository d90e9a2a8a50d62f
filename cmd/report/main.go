package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/repository"
	"storefront/internal/services"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Prints the sales report from the retained sales records. Because records
// are never deleted with their orders, the report covers the full history
// including purged deliveries.
func main() {
	showRecords := flag.Bool("records", false, "list individual sales records instead of the per-product summary")
	flag.Parse()

	cfg := config.Load()
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	salesRepo := repository.NewSalesRepository(db)
	analytics := services.NewAnalyticsService(salesRepo)

	report, err := analytics.SalesReport()
	if err != nil {
		log.Fatal("Failed to build sales report:", err)
	}

	table := tablewriter.NewTable(os.Stdout)
	if *showRecords {
		table.Header("ID", "Order", "Product", "Qty", "Price", "Line Total", "Recorded At")
		for _, rec := range report.Records {
			table.Append([]string{
				strconv.FormatUint(uint64(rec.ID), 10),
				strconv.FormatUint(uint64(rec.OrderID), 10),
				rec.ProductName,
				strconv.Itoa(rec.Quantity),
				fmt.Sprintf("%.2f", rec.Price),
				fmt.Sprintf("%.2f", rec.LineTotal),
				rec.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	} else {
		table.Header("Product ID", "Product", "Units Sold", "Revenue")
		for _, p := range report.Products {
			table.Append([]string{
				strconv.FormatUint(uint64(p.ProductID), 10),
				p.ProductName,
				strconv.FormatInt(p.UnitsSold, 10),
				fmt.Sprintf("%.2f", p.Revenue),
			})
		}
	}
	if err := table.Render(); err != nil {
		log.Fatal("Failed to render table:", err)
	}

	fmt.Printf("\nTotal units sold: %d\n", report.TotalUnits)
	fmt.Printf("Total revenue: %.2f\n", report.TotalRevenue)
}
