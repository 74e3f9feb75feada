// cmd/tools/catalog-updater/main.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"guidance-workers/internal/common/config"
	"guidance-workers/internal/common/database"
	"guidance-workers/internal/models"
	"guidance-workers/pkg/catalog"
)

func main() {
	careerCmd := flag.NewFlagSet("add-career", flag.ExitOnError)
	programCmd := flag.NewFlagSet("add-program", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	careerPath := careerCmd.String("path", "configs/catalog.json", "Path to catalog file")
	careerID := careerCmd.String("id", "", "Career ID (e.g., software-developer)")
	careerTitle := careerCmd.String("title", "", "Career title")
	careerCategory := careerCmd.String("category", "", "Career category (e.g., technology)")
	careerSalary := careerCmd.String("salary", "", "Salary range")
	careerEducation := careerCmd.String("education", "", "Education path")

	programPath := programCmd.String("path", "configs/catalog.json", "Path to catalog file")
	programID := programCmd.String("id", "", "Program ID (e.g., cs-sofia)")
	programName := programCmd.String("name", "", "Program name")
	programCategory := programCmd.String("category", "", "Program category")
	programUniversity := programCmd.String("university", "", "University name")
	programFaculty := programCmd.String("faculty", "", "Faculty name")
	programMinGrade := programCmd.Float64("minGrade", 0, "Minimum admission grade")
	programDuration := programCmd.Int("duration", 0, "Duration in years")

	validatePath := validateCmd.String("path", "configs/catalog.json", "Path to catalog file")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedPath := seedCmd.String("path", "", "Path to catalog file (default: catalog.schema_path from config)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-career":
		careerCmd.Parse(os.Args[2:])
		if *careerID == "" || *careerTitle == "" || *careerCategory == "" {
			fmt.Println("Error: id, title, and category are required for add-career.")
			careerCmd.Usage()
			os.Exit(1)
		}
		entry := models.CareerCatalogEntry{
			ID:          *careerID,
			Title:       *careerTitle,
			Category:    *careerCategory,
			SalaryRange: *careerSalary,
			Education:   *careerEducation,
		}
		if err := addCareer(*careerPath, entry); err != nil {
			fmt.Printf("Error adding career: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added career: %s\n", *careerID)

	case "add-program":
		programCmd.Parse(os.Args[2:])
		if *programID == "" || *programName == "" || *programCategory == "" || *programMinGrade <= 0 {
			fmt.Println("Error: id, name, category, and a positive minGrade are required for add-program.")
			programCmd.Usage()
			os.Exit(1)
		}
		entry := models.ProgramCatalogEntry{
			ID:            *programID,
			Name:          *programName,
			Category:      *programCategory,
			University:    *programUniversity,
			Faculty:       *programFaculty,
			MinimumGrade:  *programMinGrade,
			DurationYears: *programDuration,
		}
		if err := addProgram(*programPath, entry); err != nil {
			fmt.Printf("Error adding program: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added program: %s\n", *programID)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		cat, err := catalog.Load(*validatePath)
		if err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog validation passed. %d careers, %d programs.\n", len(cat.Careers), len(cat.Programs))

	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := seedElasticsearch(*seedPath); err != nil {
			fmt.Printf("Error seeding catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog seeded into Elasticsearch.")

	case "help":
		fallthrough
	default:
		help()
	}
}

// seedElasticsearch indexes every catalog entry into the configured
// career and program indexes so search-catalog can serve them. An empty
// path falls back to catalog.schema_path from the loaded config.
func seedElasticsearch(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.Load(resolveCatalogPath(path, cfg))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		return fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	ctx := context.Background()

	for _, career := range cat.Careers {
		if err := indexDocument(ctx, esClient, cfg.Catalog.CareerIndex, career.ID, career); err != nil {
			return fmt.Errorf("index career %s: %w", career.ID, err)
		}
	}
	for _, program := range cat.Programs {
		if err := indexDocument(ctx, esClient, cfg.Catalog.ProgramIndex, program.ID, program); err != nil {
			return fmt.Errorf("index program %s: %w", program.ID, err)
		}
	}

	fmt.Printf("Indexed %d careers into %s and %d programs into %s.\n",
		len(cat.Careers), cfg.Catalog.CareerIndex, len(cat.Programs), cfg.Catalog.ProgramIndex)
	return nil
}

func resolveCatalogPath(flagPath string, cfg *config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	return cfg.Catalog.SchemaPath
}

func indexDocument(ctx context.Context, esClient *database.ElasticsearchClient, index, id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, esClient.Client)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch returned %s", res.Status())
	}
	return nil
}

func addCareer(path string, entry models.CareerCatalogEntry) error {
	cat, err := loadOrInit(path)
	if err != nil {
		return err
	}

	if _, exists := cat.FindCareer(entry.ID); exists {
		return fmt.Errorf("career with ID %s already exists", entry.ID)
	}

	cat.Careers = append(cat.Careers, entry)
	return catalog.Save(cat, path)
}

func addProgram(path string, entry models.ProgramCatalogEntry) error {
	cat, err := loadOrInit(path)
	if err != nil {
		return err
	}

	if _, exists := cat.FindProgram(entry.ID); exists {
		return fmt.Errorf("program with ID %s already exists", entry.ID)
	}

	cat.Programs = append(cat.Programs, entry)
	return catalog.Save(cat, path)
}

func loadOrInit(path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &catalog.Catalog{
				Version:  "1.0.0",
				Careers:  []models.CareerCatalogEntry{},
				Programs: []models.ProgramCatalogEntry{},
			}, nil
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func help() {
	fmt.Print(`
Usage: catalog-updater <command> [flags]

Commands:
  add-career   Add a career to the catalog
  add-program  Add a university program to the catalog
  validate     Validate the catalog file
  seed         Index the catalog into Elasticsearch
  help         Show this help message

Examples:
  catalog-updater add-career -id software-developer -title "Software Developer" -category technology
  catalog-updater add-program -id cs-sofia -name "Computer Science" -category technology -minGrade 7.5
  catalog-updater validate -path configs/catalog.json
  catalog-updater seed

Use 'catalog-updater <command> -h' for more information about a command.
`)
}
