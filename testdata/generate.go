package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

type User struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

func main() {
	users := []User{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
		{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2},
		{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8},
	}

	if err := writeParquet("users.parquet", users); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV("users.csv", users); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated users.parquet and users.csv with 5 users")
}

func writeParquet(path string, users []User) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	if _, err := writer.Write(users); err != nil {
		return err
	}
	return writer.Close()
}

func writeCSV(path string, users []User) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"id", "name", "age", "active", "score"})
	for _, u := range users {
		_ = w.Write([]string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			strconv.Itoa(int(u.Age)),
			strconv.FormatBool(u.Active),
			strconv.FormatFloat(u.Score, 'f', -1, 64),
		})
	}
	w.Flush()
	return w.Error()
}
