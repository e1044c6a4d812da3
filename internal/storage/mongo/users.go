package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/social-network/internal/models"
)

// ms приводит время к точности MongoDB DateTime (миллисекунды, UTC).
func ms(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func exists(v bool) bson.D { return bson.D{{Key: "$exists", Value: v}} }

// wrap сохраняет сентинелы storage и добавляет op к прочим ошибкам.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}

// CreateAccount сохраняет новый аккаунт. Дубликат email — storage.ErrAlreadyExists.
func (m *Mongo) CreateAccount(ctx context.Context, a *models.Account) error {
	const op = "storage/mongo/CreateAccount"

	return wrap(op, m.users.Insert(ctx, a))
}

// AccountByID возвращает аккаунт по id (включая замороженные).
func (m *Mongo) AccountByID(ctx context.Context, id string) (*models.Account, error) {
	const op = "storage/mongo/AccountByID"

	a, err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, wrap(op, err)
	}

	return a, nil
}

// AccountByEmail возвращает аккаунт по нормализованному email.
func (m *Mongo) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage/mongo/AccountByEmail"

	a, err := m.users.FindOne(ctx, bson.D{{Key: "email", Value: models.NormalizeEmail(email)}})
	if err != nil {
		return nil, wrap(op, err)
	}

	return a, nil
}

// FriendsOf возвращает карточки незамороженных аккаунтов из ids.
func (m *Mongo) FriendsOf(ctx context.Context, ids []string) ([]models.Friend, error) {
	const op = "storage/mongo/FriendsOf"

	if len(ids) == 0 {
		return []models.Friend{}, nil
	}

	proj := bson.D{
		{Key: "firstName", Value: 1},
		{Key: "lastName", Value: 1},
		{Key: "email", Value: 1},
		{Key: "gender", Value: 1},
		{Key: "profileImage", Value: 1},
	}

	accs, err := m.users.Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}, {Key: "freezedAt", Value: exists(false)}},
		options.Find().SetProjection(proj),
	)
	if err != nil {
		return nil, wrap(op, err)
	}

	out := make([]models.Friend, 0, len(accs))
	for _, a := range accs {
		out = append(out, models.Friend{
			ID:           a.ID,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			Email:        a.Email,
			Gender:       a.Gender,
			ProfileImage: a.ProfileImage,
		})
	}

	return out, nil
}

// SetConfirmOTP заменяет хэш OTP подтверждения у неподтверждённого аккаунта.
func (m *Mongo) SetConfirmOTP(ctx context.Context, id, otpHash string) error {
	const op = "storage/mongo/SetConfirmOTP"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "confirmedAt", Value: exists(false)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "confirmEmailOtp", Value: otpHash},
			{Key: "updatedAt", Value: ms(time.Now())},
		}}},
	))
}

// ConfirmEmail одним обновлением выставляет confirmedAt и снимает confirmEmailOtp.
// Аккаунт без ожидающего OTP или уже подтверждённый — storage.ErrNotFound.
func (m *Mongo) ConfirmEmail(ctx context.Context, id string, at time.Time) error {
	const op = "storage/mongo/ConfirmEmail"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "confirmEmailOtp", Value: exists(true)},
			{Key: "confirmedAt", Value: exists(false)},
		},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "confirmedAt", Value: ms(at)}, {Key: "updatedAt", Value: ms(at)}}},
			{Key: "$unset", Value: bson.D{{Key: "confirmEmailOtp", Value: 1}}},
		},
	))
}

// SetResetOTP сохраняет хэш OTP сброса пароля.
func (m *Mongo) SetResetOTP(ctx context.Context, id, otpHash string) error {
	const op = "storage/mongo/SetResetOTP"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "resetPasswordOtp", Value: otpHash},
			{Key: "updatedAt", Value: ms(time.Now())},
		}}},
	))
}

// ResetPassword меняет пароль, снимает OTP сброса и сдвигает changeCredentialsAt.
func (m *Mongo) ResetPassword(ctx context.Context, id, passwordHash string, at time.Time) error {
	const op = "storage/mongo/ResetPassword"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "resetPasswordOtp", Value: exists(true)}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "password", Value: passwordHash},
				{Key: "changeCredentialsAt", Value: ms(at)},
				{Key: "updatedAt", Value: ms(at)},
			}},
			{Key: "$unset", Value: bson.D{{Key: "resetPasswordOtp", Value: 1}}},
		},
	))
}

// TouchCredentials сдвигает changeCredentialsAt.
func (m *Mongo) TouchCredentials(ctx context.Context, id string, at time.Time) error {
	const op = "storage/mongo/TouchCredentials"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "changeCredentialsAt", Value: ms(at)},
			{Key: "updatedAt", Value: ms(at)},
		}}},
	))
}

// Freeze замораживает аккаунт: freezedAt/freezedBy + changeCredentialsAt, restore-поля снимаются.
func (m *Mongo) Freeze(ctx context.Context, id, by string, at time.Time) error {
	const op = "storage/mongo/Freeze"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "freezedAt", Value: exists(false)}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "freezedAt", Value: ms(at)},
				{Key: "freezedBy", Value: by},
				{Key: "changeCredentialsAt", Value: ms(at)},
				{Key: "updatedAt", Value: ms(at)},
			}},
			{Key: "$unset", Value: bson.D{{Key: "restoredAt", Value: 1}, {Key: "restoredBy", Value: 1}}},
		},
	))
}

// Restore размораживает аккаунт, если freezedBy не входит в excludeFreezers.
func (m *Mongo) Restore(ctx context.Context, id, by string, excludeFreezers []string, at time.Time) error {
	const op = "storage/mongo/Restore"

	if excludeFreezers == nil {
		excludeFreezers = []string{}
	}

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "freezedAt", Value: exists(true)},
			{Key: "freezedBy", Value: bson.D{{Key: "$nin", Value: excludeFreezers}}},
		},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "restoredAt", Value: ms(at)},
				{Key: "restoredBy", Value: by},
				{Key: "updatedAt", Value: ms(at)},
			}},
			{Key: "$unset", Value: bson.D{{Key: "freezedAt", Value: 1}, {Key: "freezedBy", Value: 1}}},
		},
	))
}

// DeleteFrozen удаляет аккаунт только если он заморожен.
func (m *Mongo) DeleteFrozen(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteFrozen"

	return wrap(op, m.users.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "freezedAt", Value: exists(true)}}))
}

// ChangeRole меняет роль, если текущая роль не входит в deny.
func (m *Mongo) ChangeRole(ctx context.Context, id string, role models.Role, deny []models.Role) error {
	const op = "storage/mongo/ChangeRole"

	if deny == nil {
		deny = []models.Role{}
	}

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "role", Value: bson.D{{Key: "$nin", Value: deny}}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "role", Value: role},
			{Key: "updatedAt", Value: ms(time.Now())},
		}}},
	))
}

// AddFriend добавляет friendID в друзья id.
func (m *Mongo) AddFriend(ctx context.Context, id, friendID string) error {
	const op = "storage/mongo/AddFriend"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "friends", Value: friendID}}}},
	))
}

// SetProfileImage выставляет profileImage=key и tempProfileImage=previous.
func (m *Mongo) SetProfileImage(ctx context.Context, id, key, previous string) error {
	const op = "storage/mongo/SetProfileImage"

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "profileImage", Value: key},
		{Key: "tempProfileImage", Value: previous},
		{Key: "updatedAt", Value: ms(time.Now())},
	}}}

	if previous == "" {
		update = bson.D{
			{Key: "$set", Value: bson.D{{Key: "profileImage", Value: key}, {Key: "updatedAt", Value: ms(time.Now())}}},
			{Key: "$unset", Value: bson.D{{Key: "tempProfileImage", Value: 1}}},
		}
	}

	return wrap(op, m.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update))
}

// CommitProfileImage снимает tempProfileImage, если profileImage всё ещё key.
func (m *Mongo) CommitProfileImage(ctx context.Context, id, key string) error {
	const op = "storage/mongo/CommitProfileImage"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "profileImage", Value: key}},
		bson.D{{Key: "$unset", Value: bson.D{{Key: "tempProfileImage", Value: 1}}}},
	))
}

// RollbackProfileImage возвращает previous (или снимает поле, если previous пуст),
// если profileImage всё ещё key.
func (m *Mongo) RollbackProfileImage(ctx context.Context, id, key, previous string) error {
	const op = "storage/mongo/RollbackProfileImage"

	unset := bson.D{{Key: "tempProfileImage", Value: 1}}
	set := bson.D{{Key: "updatedAt", Value: ms(time.Now())}}
	if previous == "" {
		unset = append(unset, bson.E{Key: "profileImage", Value: 1})
	} else {
		set = append(set, bson.E{Key: "profileImage", Value: previous})
	}

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "profileImage", Value: key}},
		bson.D{{Key: "$set", Value: set}, {Key: "$unset", Value: unset}},
	))
}

// SetCoverImages заменяет список обложек.
func (m *Mongo) SetCoverImages(ctx context.Context, id string, keys []string) error {
	const op = "storage/mongo/SetCoverImages"

	return wrap(op, m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "coverImages", Value: keys},
			{Key: "updatedAt", Value: ms(time.Now())},
		}}},
	))
}
