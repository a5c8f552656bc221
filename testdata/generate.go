package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

type Phone struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

func main() {
	phones := []Phone{
		{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
		{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
		{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
		{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
	}

	writeParquet("phones.parquet", phones)
	writeCSV("phones.csv", phones)

	log.Printf("Generated phones.parquet and phones.csv with %d phones", len(phones))
}

func writeParquet(path string, phones []Phone) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Phone](file)
	if _, err := writer.Write(phones); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeCSV(path string, phones []Phone) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"name", "brand", "price", "rating"})
	for _, p := range phones {
		_ = w.Write([]string{
			p.Name,
			p.Brand,
			strconv.FormatInt(p.Price, 10),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}
