package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type App struct {
	serverAddr string
	client     *http.Client
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(serverAddr string) *App {
	return &App{
		serverAddr: serverAddr,
		client:     &http.Client{Timeout: 10 * time.Second},
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type apiError struct {
	Detail string `json:"detail"`
}

// Register prompts for credentials and creates the user over the API.
func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	body, err := json.Marshal(registerRequest{Username: username, Password: string(password)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.serverAddr+"/api/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			return fmt.Errorf("registration failed: %s", e.Detail)
		}
		return fmt.Errorf("registration failed: status %d", resp.StatusCode)
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}
