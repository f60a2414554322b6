// Command voicechat is a terminal client for exercising a running assistant
// backend: plain chat, language switching, audio toggling, and voice input
// from an audio file via the speech websocket.
package main

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	server := flag.String("server", "http://localhost:5000", "assistant backend base URL")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}
	chatID := ""

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Multilingual E-Waste Management Chatbot")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Commands:")
	fmt.Println("  set language <code>   choose the reply language")
	fmt.Println("  audio on | audio off  toggle spoken replies")
	fmt.Println("  voice <file>          transcribe an audio file and send it")
	fmt.Println("  quit                  exit")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "quit":
			fmt.Println("Exiting chatbot...")
			return

		case strings.HasPrefix(input, "set language "):
			code := strings.TrimSpace(strings.TrimPrefix(input, "set language "))
			setPreference(client, *server, map[string]interface{}{"language": code})

		case input == "audio on":
			setPreference(client, *server, map[string]interface{}{"audio": true})

		case input == "audio off":
			setPreference(client, *server, map[string]interface{}{"audio": false})

		case strings.HasPrefix(input, "voice "):
			path := strings.TrimSpace(strings.TrimPrefix(input, "voice "))
			text, err := transcribe(*server, path)
			if err != nil {
				fmt.Printf("Voice input failed: %v\n", err)
				continue
			}
			fmt.Printf("You said: %s\n", text)
			chatID = sendChat(client, *server, chatID, text)

		default:
			chatID = sendChat(client, *server, chatID, input)
		}
	}
}

func sendChat(client *http.Client, server, chatID, message string) string {
	body, _ := json.Marshal(map[string]string{
		"chat_id": chatID,
		"message": message,
	})

	resp, err := client.Post(server+"/api/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return chatID
	}
	defer resp.Body.Close()

	var out struct {
		Response string `json:"response"`
		ChatID   string `json:"chat_id"`
		Error    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Printf("Bad response: %v\n", err)
		return chatID
	}
	if out.Error != "" {
		fmt.Printf("Server: %s\n", out.Error)
		return chatID
	}

	fmt.Printf("\nChatbot: %s\n", out.Response)
	return out.ChatID
}

func setPreference(client *http.Client, server string, payload map[string]interface{}) {
	body, _ := json.Marshal(payload)
	resp, err := client.Post(server+"/api/languages", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var out struct {
		CurrentLanguage string `json:"current_language"`
		AudioEnabled    bool   `json:"audio_enabled"`
		Error           string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Printf("Bad response: %v\n", err)
		return
	}
	if out.Error != "" {
		fmt.Printf("Server: %s\n", out.Error)
		return
	}
	fmt.Printf("Language: %s, audio: %v\n", out.CurrentLanguage, out.AudioEnabled)
}

// transcribe ships the audio file over the speech websocket and waits for
// the transcript frame.
func transcribe(server, path string) (string, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	wsURL, err := url.Parse(server)
	if err != nil {
		return "", err
	}
	switch wsURL.Scheme {
	case "https":
		wsURL.Scheme = "wss"
	default:
		wsURL.Scheme = "ws"
	}
	wsURL.Path = "/api/speech/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	request := map[string]string{
		"type":   "recognize",
		"audio":  base64.StdEncoding.EncodeToString(audio),
		"format": format,
	}
	if err := conn.WriteJSON(request); err != nil {
		return "", err
	}

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	var reply struct {
		Type  string `json:"type"`
		Text  string `json:"text"`
		Error string `json:"error"`
	}
	if err := conn.ReadJSON(&reply); err != nil {
		return "", err
	}
	if reply.Type == "error" {
		return "", fmt.Errorf("%s", reply.Error)
	}
	return reply.Text, nil
}
