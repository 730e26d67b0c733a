package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	store, err := storage.NewFileStore(config.StoragePath())
	if err != nil {
		log.Fatalf("failed to open complaint store: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list, show <id>, set-status <id> <status>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		if err := listComplaints(store); err != nil {
			log.Fatalf("Error listing complaints: %v", err)
		}
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <complaint_id>")
			os.Exit(1)
		}
		id, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		if err := showComplaint(store, id); err != nil {
			log.Fatalf("Error showing complaint: %v", err)
		}
	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <complaint_id> <status>")
			os.Exit(1)
		}
		id, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		status := os.Args[3]
		if err := store.UpdateStatus(id, status); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Complaint %d status set to %s.\n", id, status)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listComplaints(store storage.Storage) error {
	records, err := store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No complaints on file.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%d  [%s]  severity %d/5  %s\n",
			r.ID, r.StudentView.Status, r.AdminView.Severity, r.AdminView.Summary)
	}
	return nil
}

func showComplaint(store storage.Storage, id int64) error {
	record, err := store.GetByID(id)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
