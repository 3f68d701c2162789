/*
mongo.go - MongoDB Store implementation

PURPOSE:
  Production document store for employee and attendance records.
  Collections:
    employees   unique index on employee_id
                unique index on email (collation strength 2, so
                uniqueness is case-insensitive)
    attendance  unique compound index on (employee_id, date)

CONFLICT TRANSLATION:
  The unique indexes are the authoritative race defense. Two requests
  can both pass the application-level existence checks; whichever
  insert loses gets a duplicate-key error here, translated into the
  domain's Conflict category via hrms.ErrConflict.

DATE STORAGE:
  Dates are stored as ISO YYYY-MM-DD strings. They sort and range-query
  chronologically without any BSON date handling.

SEE ALSO:
  - hrms/store.go: Interface contract
  - cmd/server/main.go: Connection bootstrap and degraded mode
*/
package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrms/hrms-lite/hrms"
)

// Store is a MongoDB-backed hrms.Store.
type Store struct {
	client     *mongo.Client
	employees  *mongo.Collection
	attendance *mongo.Collection
}

// New connects to MongoDB, verifies the connection with a ping, and
// returns a store over the named database.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:     client,
		employees:  db.Collection("employees"),
		attendance: db.Collection("attendance"),
	}, nil
}

// EnsureIndexes creates the unique indexes backing the uniqueness
// invariants. Safe to call on every startup; existing indexes are
// no-ops.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.employees.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
	})
	if err != nil {
		return fmt.Errorf("creating employee indexes: %w", err)
	}

	_, err = s.attendance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating attendance index: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) InsertEmployee(ctx context.Context, e hrms.Employee) error {
	_, err := s.employees.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: employee violates a unique index", hrms.ErrConflict)
	}
	return err
}

func (s *Store) FindEmployee(ctx context.Context, employeeID string) (*hrms.Employee, error) {
	return s.findEmployee(ctx, bson.M{"employee_id": employeeID})
}

func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*hrms.Employee, error) {
	// Anchored case-insensitive match so "John@x.com" collides with
	// "john@x.com".
	return s.findEmployee(ctx, bson.M{"email": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(email) + "$",
		Options: "i",
	}})
}

func (s *Store) FindEmployeeByPhone(ctx context.Context, phone string) (*hrms.Employee, error) {
	return s.findEmployee(ctx, bson.M{"phone": phone})
}

func (s *Store) findEmployee(ctx context.Context, filter bson.M) (*hrms.Employee, error) {
	var e hrms.Employee
	err := s.employees.FindOne(ctx, filter).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]hrms.Employee, error) {
	cursor, err := s.employees.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []hrms.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) (bool, error) {
	res, err := s.employees.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) CountEmployees(ctx context.Context) (int64, error) {
	return s.employees.CountDocuments(ctx, bson.M{})
}

func (s *Store) DepartmentCounts(ctx context.Context) ([]hrms.DepartmentCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := s.employees.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []hrms.DepartmentCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (s *Store) InsertAttendance(ctx context.Context, rec hrms.AttendanceRecord) error {
	_, err := s.attendance.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: attendance already marked for this employee and date", hrms.ErrConflict)
	}
	return err
}

func (s *Store) FindAttendance(ctx context.Context, employeeID, date string) (*hrms.AttendanceRecord, error) {
	var rec hrms.AttendanceRecord
	err := s.attendance.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListAttendance(ctx context.Context, f hrms.AttendanceFilter) ([]hrms.AttendanceRecord, error) {
	opts := options.Find()
	if f.NewestFirst {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := s.attendance.Find(ctx, attendanceQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []hrms.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) UpdateAttendanceStatus(ctx context.Context, employeeID, date string, status hrms.Status) (bool, error) {
	res, err := s.attendance.UpdateOne(ctx,
		bson.M{"employee_id": employeeID, "date": date},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Store) CountAttendance(ctx context.Context, f hrms.AttendanceFilter) (int64, error) {
	return s.attendance.CountDocuments(ctx, attendanceQuery(f))
}

func attendanceQuery(f hrms.AttendanceFilter) bson.M {
	query := bson.M{}
	if f.EmployeeID != "" {
		query["employee_id"] = f.EmployeeID
	}
	if f.Date != "" {
		query["date"] = f.Date
	}
	if f.DateFrom != "" {
		query["date"] = bson.M{"$gte": f.DateFrom}
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	return query
}
