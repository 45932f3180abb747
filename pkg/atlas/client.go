// Package atlas adapts the MongoDB Atlas Admin API to the sweep's OrgAPI
// interface. Everything here is thin request/response plumbing; the pause
// decision itself lives in pkg/inactivity.
package atlas

import (
	"fmt"

	"github.com/mongodb-forks/digest"
	"github.com/op/go-logging"
	"go.mongodb.org/atlas/mongodbatlas"
)

var log = logging.MustGetLogger("atlas")

// Client wraps the Atlas admin client with the organization scope the sweep
// operates in. OrgID may be empty, in which case every project visible to
// the API key is listed.
type Client struct {
	api   *mongodbatlas.Client
	orgID string
}

// NewClient builds a digest-authenticated Atlas client from a programmatic
// API key pair.
func NewClient(publicKey, privateKey, orgID string) (*Client, error) {
	transport := digest.NewTransport(publicKey, privateKey)
	httpClient, err := transport.Client()
	if err != nil {
		return nil, fmt.Errorf("building digest transport: %w", err)
	}

	api, err := mongodbatlas.New(httpClient)
	if err != nil {
		return nil, fmt.Errorf("building atlas client: %w", err)
	}

	return &Client{api: api, orgID: orgID}, nil
}
