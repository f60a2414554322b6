package history_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	historyHandler "github.com/adarsh8081/e-waste-management/internal/handler/history"
	"github.com/adarsh8081/e-waste-management/internal/service/history"
)

func newServer(t *testing.T) (*httptest.Server, *history.Store) {
	t.Helper()

	store, err := history.NewStore(filepath.Join(t.TempDir(), "chat_history.json"))
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}

	r := chi.NewRouter()
	historyHandler.New(store).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateAndListChats(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/chats/", "application/json", strings.NewReader(`{"name":"recycling questions"}`))
	if err != nil {
		t.Fatalf("POST /chats: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decode(t, resp)
	chat, _ := created["chat"].(map[string]interface{})
	if chat["name"] != "recycling questions" {
		t.Fatalf("created chat = %v", chat)
	}

	listResp, err := http.Get(srv.URL + "/chats/")
	if err != nil {
		t.Fatalf("GET /chats: %v", err)
	}
	listed := decode(t, listResp)
	chats, _ := listed["chats"].([]interface{})
	if len(chats) != 1 {
		t.Fatalf("expected 1 chat, got %d", len(chats))
	}
}

func TestCreateChatWithoutBody(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/chats/", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /chats: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decode(t, resp)
	chat, _ := created["chat"].(map[string]interface{})
	if chat["name"] != "Chat 1" {
		t.Fatalf("default name = %v", chat["name"])
	}
}

func TestGetChat(t *testing.T) {
	srv, store := newServer(t)

	session, err := store.CreateSession("lookup")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	resp, err := http.Get(srv.URL + "/chats/" + session.ID)
	if err != nil {
		t.Fatalf("GET chat: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	out := decode(t, resp)
	chat, _ := out["chat"].(map[string]interface{})
	if chat["id"] != session.ID {
		t.Fatalf("wrong chat returned: %v", chat)
	}
}

func TestGetChatNotFound(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/chats/missing-id")
	if err != nil {
		t.Fatalf("GET chat: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if out := decode(t, resp); out["error"] != "Chat not found" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
}

func TestRenameChat(t *testing.T) {
	srv, store := newServer(t)

	session, err := store.CreateSession("old name")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	resp, err := http.Post(srv.URL+"/chats/"+session.ID+"/rename", "application/json", strings.NewReader(`{"name":"new name"}`))
	if err != nil {
		t.Fatalf("POST rename: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	got, _ := store.GetSession(session.ID)
	if got.Name != "new name" {
		t.Fatalf("rename not applied: %q", got.Name)
	}
}

func TestRenameChatMissingName(t *testing.T) {
	srv, store := newServer(t)

	session, err := store.CreateSession("unchanged")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	resp, err := http.Post(srv.URL+"/chats/"+session.ID+"/rename", "application/json", strings.NewReader(`{"name":"  "}`))
	if err != nil {
		t.Fatalf("POST rename: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if out := decode(t, resp); out["error"] != "New name not provided" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
}

func TestRenameChatNotFound(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/chats/missing/rename", "application/json", strings.NewReader(`{"name":"anything"}`))
	if err != nil {
		t.Fatalf("POST rename: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDeleteChat(t *testing.T) {
	srv, store := newServer(t)

	session, err := store.CreateSession("doomed")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/chats/"+session.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE chat: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	if _, found := store.GetSession(session.ID); found {
		t.Fatal("session still present after delete")
	}
}

func TestDeleteChatNotFound(t *testing.T) {
	srv, _ := newServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/chats/missing", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE chat: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestShareChat(t *testing.T) {
	srv, store := newServer(t)

	session, err := store.CreateSession("shared")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	if _, err := store.AddMessage(session.ID, "question", "answer"); err != nil {
		t.Fatalf("AddMessage err: %v", err)
	}

	resp, err := http.Get(srv.URL + "/chats/" + session.ID + "/share")
	if err != nil {
		t.Fatalf("GET share: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	out := decode(t, resp)
	chat, _ := out["chat"].(map[string]interface{})
	if chat["name"] != "shared" {
		t.Fatalf("share export name = %v", chat["name"])
	}
	if _, exposed := chat["id"]; exposed {
		t.Fatal("share export should not include the session id")
	}
	messages, _ := chat["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("share export messages = %v", messages)
	}
}
