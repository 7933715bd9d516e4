package detector

import "testing"

func TestIsEnglish(t *testing.T) {
	if testing.Short() {
		t.Skip("language models are slow to load")
	}
	d := New()

	if !d.IsEnglish("Could you please send me the quarterly report tomorrow morning?") {
		t.Error("clear English sentence not detected as English")
	}
	if d.IsEnglish("क्या आप मुझे रिपोर्ट भेज सकते हैं") {
		t.Error("Devanagari sentence detected as English")
	}
	if !d.IsEnglish("") {
		t.Error("empty input must count as English")
	}
}

func TestDetectISO(t *testing.T) {
	if testing.Short() {
		t.Skip("language models are slow to load")
	}
	d := New()

	code, ok := d.DetectISO("क्या आप मुझे रिपोर्ट भेज सकते हैं")
	if !ok || code != "HI" {
		t.Errorf("DetectISO = %q, %v", code, ok)
	}
}
