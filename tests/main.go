package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"crewledger/config"
	"crewledger/database"
	"crewledger/models"
	"crewledger/services/finance"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seed tool: wipes and repopulates the crew, projects and shifts collections
// with demo data for local development. Run with a local MongoDB only.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	crewColl := db.Collection("crew")
	projectColl := db.Collection("projects")
	shiftColl := db.Collection("shifts")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, coll := range []string{"crew", "projects", "shifts", "payments"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	designations := []struct {
		Title string
		Wage  float64
	}{
		{"Gaffer", 8000},
		{"Best Boy", 6000},
		{"Lightman", 3500},
		{"Spark", 3000},
		{"Generator Operator", 4000},
	}

	// Crew: three people per designation, each with their own profile.
	var crew []interface{}
	var crewDocs []models.CrewMember
	counter := 1
	for _, d := range designations {
		for i := 0; i < 3; i++ {
			member := models.CrewMember{
				ID:          uuid.New().String(),
				MID:         fmt.Sprintf("MID-%04d", counter),
				Name:        fmt.Sprintf("%s %d", d.Title, i+1),
				Designation: d.Title,
				Mobile:      fmt.Sprintf("98%08d", counter),
				DailyWage:   d.Wage,
			}
			crew = append(crew, member)
			crewDocs = append(crewDocs, member)
			counter++
		}
	}
	if _, err := crewColl.InsertMany(ctx, crew); err != nil {
		log.Fatalf("Failed to seed crew: %v", err)
	}

	// Projects: two productions sharing part of the crew.
	names := []string{"Monsoon Feature", "Festival Commercial"}
	var projects []interface{}
	var projectIDs []string
	for p, name := range names {
		var assignments []models.ProjectCrewAssignment
		for i, member := range crewDocs {
			// First project takes everyone, second takes every other profile.
			if p == 1 && i%2 == 1 {
				continue
			}
			assignments = append(assignments, models.ProjectCrewAssignment{
				CrewID:      member.ID,
				MID:         member.MID,
				Designation: member.Designation,
				DailyWage:   member.DailyWage,
			})
		}
		project := models.Project{
			ID:        uuid.New().String(),
			Name:      name,
			Status:    "Ongoing",
			Location:  "Mumbai",
			StartDate: time.Now().AddDate(0, 0, -14).Format("2006-01-02"),
			Crew:      assignments,
		}
		projects = append(projects, project)
		projectIDs = append(projectIDs, project.ID)
	}
	if _, err := projectColl.InsertMany(ctx, projects); err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	// Shifts: the last ten days on the first project, random durations.
	durations := []float64{0.5, 1, 1, 1, 1.25, 1.5}
	var shifts []interface{}
	for day := 10; day >= 1; day-- {
		date := time.Now().AddDate(0, 0, -day)
		for _, member := range crewDocs {
			if rand.Float64() < 0.2 {
				continue // day off
			}
			duration := durations[rand.Intn(len(durations))]
			earned := member.DailyWage*duration + 200
			shifts = append(shifts, models.Shift{
				ID:           uuid.New().String(),
				CrewID:       member.ID,
				MID:          member.MID,
				Mobile:       member.Mobile,
				ProjectID:    projectIDs[0],
				Designation:  member.Designation,
				DailyWage:    member.DailyWage,
				Date:         date.Format("2006-01-02"),
				Day:          date.Weekday().String(),
				CallTime:     "06:00",
				ShiftInTime:  "06:30",
				Duration:     duration,
				Conveyance:   200,
				EarnedAmount: earned,
				PaidAmount:   0,
				Status:       finance.Status(earned, 0),
			})
		}
	}
	if _, err := shiftColl.InsertMany(ctx, shifts); err != nil {
		log.Fatalf("Failed to seed shifts: %v", err)
	}

	fmt.Printf("Seeded %d crew profiles, %d projects, %d shifts\n",
		len(crew), len(projects), len(shifts))
}
