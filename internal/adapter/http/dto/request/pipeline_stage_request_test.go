package request

import "testing"

func TestCreatePipelineStageRequest_ToInput(t *testing.T) {
	order := 3
	prob := 40
	in := CreatePipelineStageRequest{Name: "Demo", Order: &order, Probability: &prob, Color: "#fff"}.ToInput()

	if in.Name != "Demo" || in.Probability != 40 || in.Color != "#fff" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Order == nil || *in.Order != 3 {
		t.Fatalf("expected order 3, got %v", in.Order)
	}

	in = CreatePipelineStageRequest{Name: "Demo"}.ToInput()
	if in.Order != nil || in.Probability != 0 {
		t.Fatalf("expected unset order and zero probability, got %+v", in)
	}
}

func TestUpdatePipelineStageRequest_ToUpdate(t *testing.T) {
	if !(UpdatePipelineStageRequest{}).ToUpdate().IsEmpty() {
		t.Fatalf("expected empty update")
	}

	prob := 80
	u := UpdatePipelineStageRequest{Probability: &prob}.ToUpdate()
	if u.Probability == nil || *u.Probability != 80 || u.Name != nil || u.Order != nil || u.Color != nil {
		t.Fatalf("unexpected update: %+v", u)
	}
}
