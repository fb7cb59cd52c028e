package appointments

import (
	"context"
	"errors"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	DaysCollection         *mongo.Collection
	AppointmentsCollection *mongo.Collection
	InterviewersCollection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	database := db.Database(dbName)
	return &AppointmentMongoRepository{
		DaysCollection:         database.Collection(constvars.MongoCollectionDays),
		AppointmentsCollection: database.Collection(constvars.MongoCollectionAppointments),
		InterviewersCollection: database.Collection(constvars.MongoCollectionInterviewers),
	}
}

func (repo *AppointmentMongoRepository) FindAllDays(ctx context.Context) ([]models.Day, error) {
	var days []models.Day
	cursor, err := repo.DaysCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &days)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return days, nil
}

func (repo *AppointmentMongoRepository) FindAllAppointments(ctx context.Context) (map[int]models.Appointment, error) {
	var appointments []models.Appointment
	cursor, err := repo.AppointmentsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	result := make(map[int]models.Appointment, len(appointments))
	for _, appointment := range appointments {
		result[appointment.ID] = appointment
	}
	return result, nil
}

func (repo *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.AppointmentsCollection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindAllInterviewers(ctx context.Context) (map[int]models.Interviewer, error) {
	var interviewers []models.Interviewer
	cursor, err := repo.InterviewersCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &interviewers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	result := make(map[int]models.Interviewer, len(interviewers))
	for _, interviewer := range interviewers {
		result[interviewer.ID] = interviewer
	}
	return result, nil
}

func (repo *AppointmentMongoRepository) FindInterviewerByID(ctx context.Context, interviewerID int) (*models.Interviewer, error) {
	var interviewer models.Interviewer
	err := repo.InterviewersCollection.FindOne(ctx, bson.M{"_id": interviewerID}).Decode(&interviewer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &interviewer, nil
}

// UpdateInterview sets the interview of an appointment; a nil interview
// empties the slot.
func (repo *AppointmentMongoRepository) UpdateInterview(ctx context.Context, appointmentID int, interview *models.Interview) error {
	result, err := repo.AppointmentsCollection.UpdateOne(ctx,
		bson.M{"_id": appointmentID},
		bson.M{"$set": bson.M{"interview": interview}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotExist(nil, appointmentID)
	}
	return nil
}

func (repo *AppointmentMongoRepository) UpdateInterviewerAvatar(ctx context.Context, interviewerID int, avatar string) error {
	result, err := repo.InterviewersCollection.UpdateOne(ctx,
		bson.M{"_id": interviewerID},
		bson.M{"$set": bson.M{"avatar": avatar}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInterviewerNotExist(nil, interviewerID)
	}
	return nil
}

// ReplaceSchedule drops every day, appointment and interviewer and inserts
// the given schedule in their place.
func (repo *AppointmentMongoRepository) ReplaceSchedule(ctx context.Context, schedule *models.Schedule) error {
	days := make([]interface{}, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		days = append(days, day)
	}
	appointments := make([]interface{}, 0, len(schedule.Appointments))
	for _, appointment := range schedule.Appointments {
		appointments = append(appointments, appointment)
	}
	interviewers := make([]interface{}, 0, len(schedule.Interviewers))
	for _, interviewer := range schedule.Interviewers {
		interviewers = append(interviewers, interviewer)
	}

	collections := []struct {
		collection *mongo.Collection
		documents  []interface{}
	}{
		{repo.InterviewersCollection, interviewers},
		{repo.AppointmentsCollection, appointments},
		{repo.DaysCollection, days},
	}
	for _, each := range collections {
		_, err := each.collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
		if len(each.documents) == 0 {
			continue
		}
		_, err = each.collection.InsertMany(ctx, each.documents)
		if err != nil {
			return exceptions.ErrMongoDBInsertDocument(err)
		}
	}
	return nil
}
