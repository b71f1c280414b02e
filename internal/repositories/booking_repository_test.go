package repositories

import (
	"testing"

	"vitatkal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func groupColumns() []string {
	return []string{
		"group_id", "boarding_station", "destination", "travel_class", "phone",
		"date_of_journey", "submitted_on", "status", "agent_id", "profit_paise", "split_json",
	}
}

func TestGetGroupByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_groups").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(groupColumns()))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetGroupByID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestGetGroupByIDLoadsAssignmentAndPassengers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_groups").
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(groupColumns()).AddRow(
			"g1", "Chennai Central", "Bangalore", "3A", "9383496183",
			"2025-10-01", "2025-09-15", "Booked", "a", int64(20000), `{"a":50,"b":25,"c":25}`,
		))
	mock.ExpectQuery("FROM booking_passengers").
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"passenger_name", "age", "gender"}).
			AddRow("Asha", 34, "Female").
			AddRow("Ravi", 36, "Male"))

	repo := BookingRepository{DB: db}
	g, err := repo.GetGroupByID("g1")
	if err != nil {
		t.Fatalf("GetGroupByID error: %v", err)
	}

	if g.Status != domain.StatusBooked {
		t.Fatalf("status = %s", g.Status)
	}
	if g.Assignment == nil {
		t.Fatalf("assignment missing")
	}
	if g.Assignment.Agent != "a" || g.Assignment.Profit != 20000 {
		t.Fatalf("assignment = %+v", g.Assignment)
	}
	if g.Assignment.Split["b"] != 25 {
		t.Fatalf("split not decoded: %v", g.Assignment.Split)
	}
	if len(g.Passengers) != 2 || g.Passengers[0].Name != "Asha" {
		t.Fatalf("passengers = %+v", g.Passengers)
	}
}

func TestListGroupsAttachesPassengers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_groups").
		WillReturnRows(sqlmock.NewRows(groupColumns()).
			AddRow("g2", "Mumbai", "Pune", "CC", "9778701912",
				"2025-11-05", "2025-09-20", "Pending", nil, nil, nil).
			AddRow("g1", "Chennai Central", "Bangalore", "3A", "9383496183",
				"2025-10-01", "2025-09-15", "Booked", "a", int64(20000), `{"a":100}`))
	mock.ExpectQuery("FROM booking_passengers").
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "passenger_name", "age", "gender"}).
			AddRow("g1", "Asha", 34, "Female").
			AddRow("g2", "Kiran", 28, "Other"))

	repo := BookingRepository{DB: db}
	groups, err := repo.ListGroups()
	if err != nil {
		t.Fatalf("ListGroups error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("groups = %d", len(groups))
	}
	if groups[0].GroupID != "g2" || groups[0].Assignment != nil {
		t.Fatalf("pending group wrong: %+v", groups[0])
	}
	if len(groups[0].Passengers) != 1 || groups[0].Passengers[0].Name != "Kiran" {
		t.Fatalf("g2 passengers = %+v", groups[0].Passengers)
	}
	if groups[1].Assignment == nil || groups[1].Assignment.Split["a"] != 100 {
		t.Fatalf("g1 assignment = %+v", groups[1].Assignment)
	}
}
