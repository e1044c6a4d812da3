// mongo реализует контракты storage поверх MongoDB.
// Все коллекции обслуживаются одним обобщённым репозиторием Collection[T];
// сущностные методы (users.go, tokens.go, posts.go, ...) лишь собирают фильтры
// и обновления для него.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

const (
	usersCollection          = "users"
	tokensCollection         = "tokens"
	postsCollection          = "posts"
	commentsCollection       = "comments"
	friendRequestsCollection = "friend_requests"
	defaultDBName            = "social"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client         *mongodriver.Client
	db             *mongodriver.Database
	users          *Collection[models.Account]
	tokens         *Collection[models.RevokedToken]
	posts          *Collection[models.Post]
	comments       *Collection[models.Comment]
	friendRequests *Collection[models.FriendRequest]
}

// New подключается к MongoDB, проверяет его, подготавливает коллекции и обеспечивает индексацию.
func New(ctx context.Context, cfg config.DBConfig) (*Mongo, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.DatabaseURL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DatabaseURL))

	m := &Mongo{
		client:         cli,
		db:             db,
		users:          NewCollection[models.Account](db.Collection(usersCollection)),
		tokens:         NewCollection[models.RevokedToken](db.Collection(tokensCollection)),
		posts:          NewCollection[models.Post](db.Collection(postsCollection)),
		comments:       NewCollection[models.Comment](db.Collection(commentsCollection)),
		friendRequests: NewCollection[models.FriendRequest](db.Collection(friendRequestsCollection)),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close отключает клиента.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary (readiness).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создаёт индексы:
//   - users: уникальный email;
//   - tokens: уникальный jti, expiresAt для чистки журнала;
//   - posts: createdBy + createdAt(desc) и createdAt(desc) для ленты;
//   - comments: postId + commentId;
//   - friend_requests: createdBy + sendTo.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	plan := []struct {
		coll   *mongodriver.Collection
		models []mongodriver.IndexModel
	}{
		{m.users.coll, []mongodriver.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
		}},
		{m.tokens.coll, []mongodriver.IndexModel{
			{Keys: bson.D{{Key: "jti", Value: 1}}, Options: options.Index().SetName("uniq_jti").SetUnique(true)},
			{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetName("expires_at")},
		}},
		{m.posts.coll, []mongodriver.IndexModel{
			{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_by_created_desc")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_desc")},
		}},
		{m.comments.coll, []mongodriver.IndexModel{
			{Keys: bson.D{{Key: "postId", Value: 1}, {Key: "commentId", Value: 1}}, Options: options.Index().SetName("post_parent")},
		}},
		{m.friendRequests.coll, []mongodriver.IndexModel{
			{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "sendTo", Value: 1}}, Options: options.Index().SetName("created_by_send_to")},
		}},
	}

	for _, p := range plan {
		if _, err := p.coll.Indexes().CreateMany(ctx, p.models); err != nil {
			return fmt.Errorf("mongo ensure indexes %s: %w", p.coll.Name(), err)
		}
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}

// Проверка выполнения контрактов.
var (
	_ storage.Accounts       = (*Mongo)(nil)
	_ storage.RevokedTokens  = (*Mongo)(nil)
	_ storage.Posts          = (*Mongo)(nil)
	_ storage.Comments       = (*Mongo)(nil)
	_ storage.FriendRequests = (*Mongo)(nil)
)
