package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"cash_receipts", "expense_entries", "timesheet_entries", "projects", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		staff := []struct {
			Email     string
			Name      string
			Role      string
			DailyRate float64
			DailyWage float64
			Level     int
		}{
			{"head@dept.example", "Wei Chen", "department_head", 2400, 2000, 5},
			{"secretary@dept.example", "Li Fang", "secretary", 800, 700, 2},
			{"pm.zhao@dept.example", "Zhao Lei", "project_manager", 1600, 1400, 4},
			{"pm.sun@dept.example", "Sun Min", "project_manager", 1500, 1300, 4},
			{"dev.wang@dept.example", "Wang Jun", "employee", 1200, 1000, 3},
			{"dev.liu@dept.example", "Liu Yang", "employee", 1000, 850, 2},
			{"intern.wu@dept.example", "Wu Hao", "intern", 400, 300, 1},
		}

		for _, s := range staff {
			var exists int
			if err := db.Raw("SELECT 1 FROM users WHERE email = ?", s.Email).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO users (email, name, password_hash, role, daily_rate, daily_wage, level, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, true, now(), now())",
				s.Email, s.Name, string(hash), s.Role, s.DailyRate, s.DailyWage, s.Level,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", s.Email, err)
			}
			fmt.Println("Seeded user:", s.Email)
		}

		var zhaoID, sunID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", "pm.zhao@dept.example").Row().Scan(&zhaoID); err != nil {
			log.Fatalf("failed to lookup pm.zhao: %v", err)
		}
		if err := db.Raw("SELECT id FROM users WHERE email = ?", "pm.sun@dept.example").Row().Scan(&sunID); err != nil {
			log.Fatalf("failed to lookup pm.sun: %v", err)
		}

		projects := []struct {
			Name           string
			Client         string
			ContractAmount float64
			Status         int
			DevLeaderID    int64
			ExecLeaderID   int64
			SalaryRatio    float64
		}{
			{"ERP Rollout", "Hengtong Manufacturing", 480000, 1, zhaoID, zhaoID, 0.1},
			{"Warehouse Audit", "Jinshan Logistics", 150000, 0, zhaoID, sunID, 0.12},
			{"Process Consulting", "Nanyuan Retail", 260000, 2, sunID, sunID, 0.1},
		}

		for _, p := range projects {
			var exists int
			if err := db.Raw("SELECT 1 FROM projects WHERE name = ?", p.Name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO projects (name, client_name, contract_amount, status, development_leader_id, execution_leader_id, salary_ratio, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())",
				p.Name, p.Client, p.ContractAmount, p.Status, p.DevLeaderID, p.ExecLeaderID, p.SalaryRatio,
			).Error; err != nil {
				log.Fatalf("failed to insert project %s: %v", p.Name, err)
			}
			fmt.Println("Seeded project:", p.Name)
		}

		fmt.Println("Seed data loaded; every account logs in with password:", password)
	},
}
