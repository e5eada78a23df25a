package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

// fakeModel serves the messages endpoint with a fixed text completion.
func fakeModel(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "msg_test",
			"type": "message",
			"role": "assistant",
			"model": "test-model",
			"content": [{"type": "text", "text": %q}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 1, "output_tokens": 1}
		}`, text)
	}))
}

func testAssistant(t *testing.T, srv *httptest.Server) *Assistant {
	t.Helper()
	return NewAssistant(discardLogger(), "test-key", "test-model",
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
}

func TestGenerateRecipes(t *testing.T) {
	srv := fakeModel(t, `[
		{"name":"Oat Bowl","description":"Quick breakfast","prepTime":"5 min","cookTime":"5 min",
		 "ingredients":["50g oats","200ml milk"],"instructions":["Combine","Heat"],
		 "nutritionalInfo":{"calories":320,"protein":14,"carbs":50,"fat":7,"fiber":6,"sodium":120}},
		{"name":"Egg Scramble","description":"Protein start","prepTime":"5 min","cookTime":"10 min",
		 "ingredients":["3 eggs"],"instructions":["Whisk","Cook"],
		 "nutritionalInfo":{"calories":210,"protein":18,"carbs":2,"fat":15,"fiber":0,"sodium":180}}
	]`)
	defer srv.Close()

	res := testAssistant(t, srv).GenerateRecipes(context.Background(), []string{"oats", "eggs", "milk"}, "", false)
	if !res.OK {
		t.Fatal("GenerateRecipes() OK = false")
	}
	if len(res.Value) != 2 {
		t.Fatalf("got %d recipes, want 2", len(res.Value))
	}
	if res.Value[0].Name != "Oat Bowl" || res.Value[0].NutritionalInfo.Calories != 320 {
		t.Errorf("first recipe = %+v", res.Value[0])
	}
}

func TestGenerateWorkout(t *testing.T) {
	srv := fakeModel(t, `Here is your session:
{"name":"Upper Push","exercises":[
  {"name":"Push-up","sets":"3","reps":"10-15","notes":"Full range"},
  {"name":"Pike Press","sets":"3","reps":"8-10"}
]}`)
	defer srv.Close()

	res := testAssistant(t, srv).GenerateWorkout(context.Background(), "home", nil, "upper body", "30 min", "moderate")
	if !res.OK {
		t.Fatal("GenerateWorkout() OK = false")
	}
	if res.Value.Name != "Upper Push" || len(res.Value.Exercises) != 2 {
		t.Errorf("workout = %+v", res.Value)
	}
}

func TestEstimateNutrition(t *testing.T) {
	srv := fakeModel(t, `{"calories":95,"protein":0.5,"carbs":25,"fat":0.3,"fiber":4.4,"sodium":2}`)
	defer srv.Close()

	res := testAssistant(t, srv).EstimateNutrition(context.Background(), "apple", "1 medium")
	if !res.OK {
		t.Fatal("EstimateNutrition() OK = false")
	}
	if res.Value.Calories != 95 || res.Value.Fiber != 4.4 {
		t.Errorf("nutrients = %+v", res.Value)
	}
}

func TestDailyInsights(t *testing.T) {
	srv := fakeModel(t, "Solid protein intake today. Aim for more fiber tomorrow.")
	defer srv.Close()

	res := testAssistant(t, srv).DailyInsights(context.Background(), `{"calories":1900}`)
	if !res.OK {
		t.Fatal("DailyInsights() OK = false")
	}
	if res.Value == "" {
		t.Error("empty insight text")
	}
}

func TestAssistantFallbacks(t *testing.T) {
	t.Run("disabled assistant", func(t *testing.T) {
		a := NewAssistant(discardLogger(), "", "test-model")
		if a.Enabled() {
			t.Fatal("Enabled() = true without key")
		}
		if res := a.GenerateRecipes(context.Background(), []string{"oats"}, "", false); res.OK || res.Value == nil {
			t.Errorf("recipes result = %+v, want empty non-nil fallback", res)
		}
		if res := a.DailyInsights(context.Background(), "{}"); res.OK || res.Value == "" {
			t.Errorf("insights result = %+v, want canned fallback", res)
		}
	})

	t.Run("non-json answer", func(t *testing.T) {
		srv := fakeModel(t, "I would rather not produce JSON today.")
		defer srv.Close()

		if res := testAssistant(t, srv).EstimateNutrition(context.Background(), "apple", "1"); res.OK {
			t.Error("OK = true on unusable answer")
		}
	})

	t.Run("server failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"type":"error","error":{"type":"api_error","message":"boom"}}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		res := testAssistant(t, srv).GenerateWorkout(context.Background(), "gym", []string{"barbell"}, "legs", "45 min", "high")
		if res.OK {
			t.Error("OK = true on server failure")
		}
	})
}
