// Command seed bootstraps the visit log schema and fills it with synthetic
// encounters so the dashboard has something to show on a fresh database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"erpulse/backend/internal/config"
	"erpulse/backend/internal/logging"
	"erpulse/backend/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS patient (
	hn         TEXT PRIMARY KEY,
	first_name TEXT,
	last_name  TEXT,
	sex_code   TEXT,
	birth_date DATE
);

CREATE TABLE IF NOT EXISTS er_visit (
	vn             TEXT PRIMARY KEY,
	hn             TEXT REFERENCES patient(hn),
	visit_date     DATE NOT NULL,
	visit_time     TIMESTAMPTZ NOT NULL,
	departure_time TIMESTAMPTZ,
	triage_level   SMALLINT,
	leave_status   SMALLINT,
	shift_period   TEXT,
	patient_type   SMALLINT,
	symptom        TEXT
);

CREATE INDEX IF NOT EXISTS er_visit_date_idx ON er_visit (visit_date);
`

var (
	firstName = []string{"Anong", "Somchai", "Malee", "Prasert", "Kanya", "Wichai", "Siriporn", "Thanet"}
	lastName  = []string{"Srisuk", "Chaiyasit", "Boonmee", "Rattanakorn", "Phromma", "Sukjai"}
	symptoms  = []string{"chest pain", "fever", "abdominal pain", "head injury", "shortness of breath", "laceration", "dizziness"}
)

// leaveStatuses weights the store's real code distribution: discharge codes
// dominate, a few admits and refers, occasional EMS, some nulls (no recorded
// disposition) and a handful of cancellations.
var leaveStatuses = []*int16{
	ptr(4), ptr(4), ptr(5), ptr(6), ptr(1), ptr(1), ptr(2), ptr(3), ptr(8), ptr(9), ptr(7), nil,
}

func ptr(v int16) *int16 { return &v }

func main() {
	ctx := context.Background()
	logger := logging.NewLogger()

	days := flag.Int("days", 10, "Number of past days to seed")
	perDay := flag.Int("per-day", 40, "Average visits per day")
	flag.Parse()

	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("Schema ensured")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	patients, err := seedPatients(ctx, pool, rng, 60)
	if err != nil {
		log.Fatalf("Failed to seed patients: %v", err)
	}
	logger.Info("Patients seeded", "count", len(patients))

	visits, err := seedVisits(ctx, pool, rng, patients, *days, *perDay)
	if err != nil {
		log.Fatalf("Failed to seed visits: %v", err)
	}
	logger.Info("Visits seeded", "count", visits, "days", *days)
}

func seedPatients(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) ([]string, error) {
	hns := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sex := fmt.Sprintf("%d", 1+rng.Intn(2))
		birth := time.Now().AddDate(-rng.Intn(95), 0, -rng.Intn(364))
		p := models.PatientDemographic{
			HN:        uuid.NewString(),
			FirstName: &firstName[rng.Intn(len(firstName))],
			LastName:  &lastName[rng.Intn(len(lastName))],
			SexCode:   &sex,
			BirthDate: &birth,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO patient (hn, first_name, last_name, sex_code, birth_date)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (hn) DO NOTHING`,
			p.HN, p.FirstName, p.LastName, p.SexCode, p.BirthDate)
		if err != nil {
			return nil, err
		}
		hns = append(hns, p.HN)
	}
	return hns, nil
}

func seedVisits(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, patients []string, days, perDay int) (int, error) {
	total := 0
	for d := 0; d < days; d++ {
		date := time.Now().AddDate(0, 0, -d)
		n := perDay/2 + rng.Intn(perDay)
		for i := 0; i < n; i++ {
			arrived := time.Date(date.Year(), date.Month(), date.Day(),
				rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.Local)

			var departure *time.Time
			if rng.Intn(10) > 0 {
				t := arrived.Add(time.Duration(15+rng.Intn(360)) * time.Minute)
				departure = &t
			}

			var hn *string
			if rng.Intn(20) > 0 {
				hn = &patients[rng.Intn(len(patients))]
			}

			var triage *int16
			if rng.Intn(25) > 0 {
				triage = ptr(int16(1 + rng.Intn(5)))
			}

			period := string(models.PeriodOrder[rng.Intn(len(models.PeriodOrder))])
			v := models.VisitRecord{
				VN:            fmt.Sprintf("%s-%04d", arrived.Format("060102"), total+1),
				HN:            hn,
				VisitDate:     arrived,
				VisitTime:     arrived,
				DepartureTime: departure,
				TriageLevel:   triage,
				LeaveStatus:   leaveStatuses[rng.Intn(len(leaveStatuses))],
				ShiftPeriod:   &period,
				PatientType:   ptr(int16(1 + rng.Intn(5))),
				Symptom:       &symptoms[rng.Intn(len(symptoms))],
			}
			_, err := pool.Exec(ctx,
				`INSERT INTO er_visit
				   (vn, hn, visit_date, visit_time, departure_time,
				    triage_level, leave_status, shift_period, patient_type, symptom)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				v.VN,
				v.HN,
				v.VisitDate.Format(models.DateLayout),
				v.VisitTime,
				v.DepartureTime,
				v.TriageLevel,
				v.LeaveStatus,
				v.ShiftPeriod,
				v.PatientType,
				v.Symptom)
			if err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
