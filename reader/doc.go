// Package reader loads CSV and Apache Parquet files into in-memory tables.
//
// The whole file is read into memory. The format is chosen from the file
// extension: ".parquet" is read with the parquet-go library, everything else
// as comma-separated values with a header row.
//
// # Basic Usage
//
// Loading a file:
//
//	t, err := reader.Load("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Columns(), t.Len())
//
// # Multi-file Operations
//
// Loading several files with the same columns using a glob pattern:
//
//	t, err := reader.Load("data/2024-*.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Column Types
//
// CSV columns are typed as a whole. A column is Int when every present cell
// is an integer, Float when every present cell is a number, and String
// otherwise. The texts "", "NA", "N/A", "NaN", "nan", "NULL", "null" and
// "None" are read as missing values.
//
// Parquet columns take their type from the file schema: integer leaves are
// Int, floating-point leaves are Float, everything else is rendered as
// String.
//
// # Resource Management
//
// Load closes every file it opens. When using ParquetReader directly,
// always call Close() when done reading:
//
//	r, err := reader.NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	t, err := r.ReadTable()
package reader
