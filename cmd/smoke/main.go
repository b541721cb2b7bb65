package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"mist-provisioning-be/pkg/events"
	pktNats "mist-provisioning-be/pkg/nats"

	"github.com/fatih/color"
)

// Request helper
func sendRequest(client *http.Client, baseURL, method, path, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func prettyPrint(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

func step(client *http.Client, baseURL, title, method, path, token string, body interface{}) bool {
	color.Yellow("\n%s", title)
	resp, respBody, err := sendRequest(client, baseURL, method, path, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		return false
	}
	if resp.StatusCode >= 300 {
		color.Red("Status: %s", resp.Status)
		prettyPrint(respBody)
		return false
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(respBody)
	return true
}

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "provisioning service base URL")
	host := flag.String("host", "", "Mist API host for the handshake (empty uses the server default)")
	org := flag.String("org", "", "explicit org id override")
	token := flag.String("token", os.Getenv("SMOKE_JWT"), "bearer token for the /api routes")
	natsURL := flag.String("nats", "", "NATS URL; when set, audit events are tailed during the run")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	color.Cyan("Mist provisioning smoke test against %s", *baseURL)

	var audited int32
	if *natsURL != "" {
		sub, err := tailAudit(*natsURL, &audited)
		if err != nil {
			color.Red("Audit tail unavailable: %v", err)
		} else {
			defer sub.Close()
		}
	}

	ok := step(client, *baseURL, "1. Service status", http.MethodGet, "/status", "", nil)

	selfReq := map[string]string{}
	if *host != "" {
		selfReq["api_host"] = *host
	}
	if *org != "" {
		selfReq["org_id"] = *org
	}
	ok = step(client, *baseURL, "2. Identity handshake", http.MethodPost, "/api/org/self", *token, selfReq) && ok
	ok = step(client, *baseURL, "3. Read back session context", http.MethodGet, "/api/org/context", *token, nil) && ok
	ok = step(client, *baseURL, "4. List sites", http.MethodGet, "/api/sites", *token, nil) && ok

	if *natsURL != "" {
		// give JetStream a moment to deliver
		time.Sleep(time.Second)
		color.Cyan("\nAudit events received: %d", atomic.LoadInt32(&audited))
	}

	if !ok {
		color.Red("\nSmoke test failed")
		os.Exit(1)
	}
	color.Green("\nSmoke test passed")
}

func tailAudit(url string, counter *int32) (*pktNats.Subscriber, error) {
	sub, err := pktNats.NewSubscriber(url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = sub.Tail(ctx, "", func(_ context.Context, event events.BaseEvent) error {
		atomic.AddInt32(counter, 1)
		color.Magenta("[AUDIT] %s %s %v", event.OccurredAt.Format(time.RFC3339), event.Type, event.Data)
		return nil
	})
	if err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
