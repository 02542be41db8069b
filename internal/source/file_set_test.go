package source

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())

	// Добавляем файл первый раз
	id1 := fs.Add("test.txt", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("test.txt", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// Старый файл остаётся доступен
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content 'hello world', got %q", got)
	}
	if got := fs.Get(id2).Path; got != "test.txt" {
		t.Errorf("Expected path 'test.txt', got %q", got)
	}
}

func TestLoadStripsBOMKeepsCRLF(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := []byte("\xEF\xBB\xBFlet x\r\n= 1;\r\n")
	if err := afero.WriteFile(mem, "/src/a.txt", content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetFS(mem)
	id, err := fs.Load("/src/a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "let x\r\n= 1;\r\n" {
		t.Errorf("Expected BOM stripped and CRLF kept, got %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag")
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("Loaded file must not be virtual")
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())
	_, err := fs.Load("nope.txt")
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestAddVirtual(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())
	id := fs.AddVirtual("<stdin>", []byte("a\r\nb"))
	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag")
	}
	if string(f.Content) != "a\r\nb" {
		t.Errorf("Expected CRLF kept, got %q", f.Content)
	}
	if len(f.LineIdx) != 1 || f.LineIdx[0] != 2 {
		t.Errorf("Expected LineIdx [2], got %v", f.LineIdx)
	}
	// 'b' стоит в начале второй строки, '\r' относится к первой
	if start, _ := fs.Resolve(Span{File: id, Start: 3, End: 4}); start != (LineCol{2, 1}) {
		t.Errorf("Expected 2:1, got %+v", start)
	}
	if start, _ := fs.Resolve(Span{File: id, Start: 1, End: 2}); start != (LineCol{1, 2}) {
		t.Errorf("Expected 1:2, got %+v", start)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())
	id := fs.AddVirtual("test.txt", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: expected %+v, got %+v", tt.off, tt.want, start)
		}
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())
	f := fs.Get(fs.AddVirtual("t", []byte("let x = 42;")))
	if got := f.Text(Span{File: f.ID, Start: 8, End: 10}); got != "42" {
		t.Errorf("Expected \"42\", got %q", got)
	}
}

func TestSpan(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	if a.Empty() {
		t.Errorf("unexpected Empty for %v", a)
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("Expected empty span")
	}
	if a.String() != "1:10-20" {
		t.Errorf("String: got %q", a.String())
	}
}
