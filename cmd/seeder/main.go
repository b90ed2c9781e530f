package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/config"
	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/tamathecxder/randomail"
)

var (
	firstNames  = []string{"Alice", "Bob", "Carol", "Dmytro", "Elena", "Farid", "Grace", "Hiro", "Ines", "Jonas"}
	lastNames   = []string{"Smith", "Lee", "King", "Kovalenko", "Garcia", "Haddad", "Hopper", "Tanaka", "Silva", "Berg"}
	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations", "Customer Support"}
	designation = map[string][]string{
		"Engineering":      {"Backend Engineer", "Frontend Engineer", "Site Reliability Engineer"},
		"Marketing":        {"Content Strategist", "Brand Manager"},
		"Sales":            {"Account Executive", "Sales Manager"},
		"HR":               {"Recruiter", "People Partner"},
		"Finance":          {"Accountant", "Financial Analyst"},
		"Operations":       {"Operations Manager", "Logistics Coordinator"},
		"Customer Support": {"Support Specialist", "Support Lead"},
	}
	locations = []string{"Kyiv", "Lisbon", "Berlin", "Remote"}
)

func main() {
	count := flag.Int("count", 10, "number of employees to create")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	api := client.NewEmployeeAPI(client.CreateHTTPClient(logger), cfg.Web.APIURL)

	created := 0
	for range *count {
		employee, err := api.CreateEmployee(ctx, randomEmployee())
		if err != nil {
			logger.ErrorContext(ctx, "Failed to create employee", sl.Err(err))
			continue
		}
		created++
		logger.InfoContext(ctx, "Employee created", slog.String("id", employee.ID), slog.String("name", employee.EmployeeName))
	}

	if created == 0 && *count > 0 {
		log.Fatal("no employees were created")
	}
	logger.InfoContext(ctx, "Seeding finished", slog.Int("created", created), slog.Int("requested", *count))
}

func pick(values []string) string {
	return values[rand.IntN(len(values))] //nolint:gosec // demo data
}

func randomEmployee() models.EmployeeInput {
	department := pick(departments)

	return models.EmployeeInput{
		EmployeeName:  pick(firstNames) + " " + pick(lastNames),
		Department:    department,
		ContactNumber: fmt.Sprintf("+380 %03d %04d", rand.IntN(1000), rand.IntN(10000)), //nolint:gosec // demo data
		Designation:   pick(designation[department]),
		Email:         randomail.GenerateRandomEmail(),
		Location:      pick(locations),
		Manager:       pick(firstNames) + " " + pick(lastNames),
	}
}
