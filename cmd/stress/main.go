// Stress probe for the request-creation path: fires concurrent creates for
// the same product and reports how many succeeded versus how many were
// rejected for insufficient stock. With a product stocked at N and requests
// of quantity 1, successes must equal N exactly.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "API base URL")
		token     = flag.String("token", "", "bearer token")
		userID    = flag.String("user", "", "requesting user id")
		productID = flag.String("product", "", "target product id")
		total     = flag.Int("n", 50, "number of concurrent requests")
		quantity  = flag.Int("q", 1, "quantity per request")
	)
	flag.Parse()

	if *token == "" || *userID == "" || *productID == "" {
		log.Fatal("-token, -user and -product are required")
	}

	client := &http.Client{Timeout: 10 * time.Second}

	var success, rejected, failed int64
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < *total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body, _ := json.Marshal(map[string]any{
				"user_id":    *userID,
				"product_id": *productID,
				"quantity":   *quantity,
			})
			req, err := http.NewRequest(http.MethodPost, *baseURL+"/product-request", bytes.NewReader(body))
			if err != nil {
				atomic.AddInt64(&failed, 1)
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+*token)

			resp, err := client.Do(req)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusCreated:
				atomic.AddInt64(&success, 1)
			case http.StatusConflict:
				// Covers both insufficient stock and the duplicate-submit
				// window.
				atomic.AddInt64(&rejected, 1)
			default:
				atomic.AddInt64(&failed, 1)
			}
		}()
	}
	wg.Wait()

	fmt.Printf("requests: %d in %v\n", *total, time.Since(start))
	fmt.Printf("  created:  %d\n", success)
	fmt.Printf("  rejected: %d\n", rejected)
	fmt.Printf("  errors:   %d\n", failed)
}
