package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/sims/internal/models"
)

func NewClient(ctx context.Context, url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("es: new client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("es: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es: info: %s: %s", res.Status(), body)
	}
	return client, nil
}

// Indexer mirrors items into an Elasticsearch index keyed by item id.
type Indexer struct {
	client *elasticsearch.Client
	index  string
}

func NewIndexer(client *elasticsearch.Client, index string) *Indexer {
	return &Indexer{client: client, index: index}
}

func (ix *Indexer) IndexItem(ctx context.Context, item *models.Item) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("es: marshal item %d: %w", item.ID, err)
	}

	res, err := ix.client.Index(
		ix.index,
		bytes.NewReader(body),
		ix.client.Index.WithDocumentID(docID(item.ID)),
		ix.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: index item %d: %w", item.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: index item %d: %s", item.ID, res.Status())
	}
	return nil
}

func (ix *Indexer) DeleteItem(ctx context.Context, id uint) error {
	res, err := ix.client.Delete(ix.index, docID(id), ix.client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es: delete item %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es: delete item %d: %s", id, res.Status())
	}
	return nil
}

func docID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type Nop struct{}

func (Nop) IndexItem(context.Context, *models.Item) error { return nil }

func (Nop) DeleteItem(context.Context, uint) error { return nil }
