package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/database/mongoclient"
	"github.com/gaslex/goapi/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Id      string   `bson:"id"`
	Engaged []string `bson:"engaged"`
	Used    []string `bson:"used"`
	Rank    int      `bson:"rank"`
}

type querySuite struct {
	suite.Suite
	im *impl
}

// The suite needs a running mongo, e.g.
// GASLEX_TEST_MONGO_URI=mongodb://localhost:27017 go test ./service/query
func TestQuerySuite(t *testing.T) {
	uri := os.Getenv("GASLEX_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("GASLEX_TEST_MONGO_URI not set")
	}
	suite.Run(t, &querySuite{
		im: &impl{client: mongoclient.MustConnectMongoClient(mongoclient.Config{Uri: uri, DBName: dbName})},
	})
}

func (q *querySuite) SetupTest() {
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, []Index{{Keys: []string{"id"}, Unique: true}}))
}

func (q *querySuite) TestInsertAndFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, &dummy{Id: "a", Rank: 1}))
	q.ErrorIs(q.im.Insert(mockCTX, mockTable, &dummy{Id: "a"}), ErrDuplicateKey)

	res := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "a"}, res))
	q.Equal(1, res.Rank)

	q.ErrorIs(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "b"}, res), ErrNotFound)
}

func (q *querySuite) TestSearchAndCount() {
	for i, id := range []string{"a", "b", "c"} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, &dummy{Id: id, Rank: i, Used: []string{"w"}}))
	}

	res := []*dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 0, "-rank", bson.M{}, &res))
	q.Len(res, 3)
	q.Equal("c", res[0].Id)

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"used": "w"})
	q.NoError(err)
	q.Equal(3, n)
}

func (q *querySuite) TestConditionalPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, &dummy{Id: "a", Engaged: []string{"w", "x"}, Used: []string{}}))

	selector := bson.M{"id": "a", "engaged": "w"}
	update := bson.M{"$pull": bson.M{"engaged": "w"}, "$addToSet": bson.M{"used": "w"}}
	q.Require().NoError(q.im.CustomPatch(mockCTX, mockTable, selector, update, false))
	// the condition no longer holds
	q.ErrorIs(q.im.CustomPatch(mockCTX, mockTable, selector, update, false), ErrNotFound)

	res := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "a"}, res))
	q.Equal([]string{"x"}, res.Engaged)
	q.Equal([]string{"w"}, res.Used)
}

func TestGetSortOption(t *testing.T) {
	req := require.New(t)
	req.Equal(bson.D{{Key: "timestamp", Value: -1}, {Key: "id", Value: 1}}, getSortOption("-timestamp", "", "id"))
	req.Equal(bson.D{}, getSortOption())
}
