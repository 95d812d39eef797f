package packs_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/repositories/packs"
	mockpacks "github.com/KirkDiggler/overlay-engine/internal/repositories/packs/mock"
	mockuuid "github.com/KirkDiggler/overlay-engine/internal/uuid/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client   *redis.Client
	mock     redismock.ClientMock
	mockCtrl *gomock.Controller
	clock    *mockpacks.MockTimeProvider
	uuid     *mockuuid.MockGenerator
	repo     packs.Repository
	now      time.Time
	pack     *element.Pack
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.clock = mockpacks.NewMockTimeProvider(s.mockCtrl)
	s.uuid = mockuuid.NewMockGenerator(s.mockCtrl)
	s.repo = packs.NewRedisRepository(&packs.RedisRepoConfig{
		Client:        s.client,
		UUIDGenerator: s.uuid,
		TimeProvider:  s.clock,
	})
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	pack := element.NewPack("raid")
	pack.Layer = 2
	pack.Elements = []element.Element{element.New("might", element.NewIconElement())}
	s.pack = &pack
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) record(key string, pack *element.Pack) []byte {
	doc, err := document.Save(pack)
	s.Require().NoError(err)
	data, err := json.Marshal(packs.Data{
		Key:       key,
		Name:      pack.Name,
		Layer:     pack.Layer,
		Document:  doc,
		UpdatedAt: s.now,
	})
	s.Require().NoError(err)
	return data
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	s.uuid.EXPECT().New().Return("k1")
	s.clock.EXPECT().Now().Return(s.now)

	s.mock.ExpectSetNX("pack:k1", s.record("k1", s.pack), 0).SetVal(true)
	s.mock.ExpectSAdd("packs", "k1").SetVal(1)

	key, err := s.repo.Create(ctx, s.pack)
	s.NoError(err)
	s.Equal("k1", key)
}

func (s *RedisRepoTestSuite) TestCreateCollision() {
	ctx := context.Background()
	s.uuid.EXPECT().New().Return("k1")
	s.clock.EXPECT().Now().Return(s.now)

	s.mock.ExpectSetNX("pack:k1", s.record("k1", s.pack), 0).SetVal(false)

	_, err := s.repo.Create(ctx, s.pack)
	s.True(ovlerr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectGet("pack:k1").SetVal(string(s.record("k1", s.pack)))
	record, err := s.repo.Get(ctx, "k1")
	s.Require().NoError(err)
	s.Equal("k1", record.Key)
	s.Equal("raid", record.Pack.Name)
	s.Equal(2, record.Pack.Layer)
	s.Len(record.Pack.Elements, 1)
	s.Equal(s.now, record.UpdatedAt)

	// Missing
	s.mock.ExpectGet("pack:k2").RedisNil()
	_, err = s.repo.Get(ctx, "k2")
	s.True(ovlerr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("pack:k1").SetErr(errors.New("redis error"))
	_, err = s.repo.Get(ctx, "k1")
	s.True(ovlerr.IsUnavailable(err))

	// Corrupt record
	s.mock.ExpectGet("pack:k1").SetVal("{not json")
	_, err = s.repo.Get(ctx, "k1")
	s.True(ovlerr.IsMalformed(err))

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.True(ovlerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	s.clock.EXPECT().Now().Return(s.now).Times(2)

	// Happy path
	s.mock.ExpectSet("pack:k1", s.record("k1", s.pack), 0).SetVal("OK")
	s.mock.ExpectSAdd("packs", "k1").SetVal(0)
	s.NoError(s.repo.Save(ctx, "k1", s.pack))

	// Dependency error
	s.mock.ExpectSet("pack:k1", s.record("k1", s.pack), 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Save(ctx, "k1", s.pack))

	// Input validation
	s.True(ovlerr.IsInvalidArgument(s.repo.Save(ctx, "", s.pack)))
	s.True(ovlerr.IsInvalidArgument(s.repo.Save(ctx, "k1", nil)))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("pack:k1").SetVal(1)
	s.mock.ExpectSRem("packs", "k1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "k1"))

	s.mock.ExpectDel("pack:k2").SetVal(0)
	s.mock.ExpectSRem("packs", "k2").SetVal(0)
	s.True(ovlerr.IsNotFound(s.repo.Delete(ctx, "k2")))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	background := element.NewPack("background")
	background.Layer = -1

	s.mock.ExpectSMembers("packs").SetVal([]string{"k1", "k2", "stale"})
	s.mock.ExpectGet("pack:k1").SetVal(string(s.record("k1", s.pack)))
	s.mock.ExpectGet("pack:k2").SetVal(string(s.record("k2", &background)))
	s.mock.ExpectGet("pack:stale").RedisNil()

	records, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("k2", records[0].Key, "lower layers first")
	s.Equal("k1", records[1].Key)
}

func (s *RedisRepoTestSuite) TestListIndexError() {
	s.mock.ExpectSMembers("packs").SetErr(errors.New("redis error"))
	_, err := s.repo.List(context.Background())
	s.True(ovlerr.IsUnavailable(err))
}
