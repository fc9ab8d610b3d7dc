package godbf

// DateField is the column stamped by SetDate.
const DateField = "DATE"

// ReplaceColumns copies column src into column dst for every active record.
// Numbers and dates are copied right-justified, everything else left-justified.
func (t *Table) ReplaceColumns(src, dst string) error {
	from, err := t.Select(src)
	if err != nil {
		return err
	}
	to, err := t.Select(dst)
	if err != nil {
		return err
	}
	for i := 0; i < t.RecordCount(); i++ {
		to.Copy(i, from, i)
	}
	return nil
}

// AddPercent scales the numeric column by percent, e.g. 10 adds 10% to every value.
func (t *Table) AddPercent(name string, percent float64) error {
	field, err := t.Select(name)
	if err != nil {
		return err
	}
	p := percent/100 + 1
	for i := 0; i < t.RecordCount(); i++ {
		field.SetFloat(i, field.GetFloat(i)*p)
	}
	return nil
}

// InsertText writes text at offset into the column for every active record.
func (t *Table) InsertText(name string, offset int, text string) error {
	field, err := t.Select(name)
	if err != nil {
		return err
	}
	b := []byte(text)
	for i := 0; i < t.RecordCount(); i++ {
		field.Insert(i, offset, b)
	}
	return nil
}

// SetDate stamps the DATE column of every active record.
func (t *Table) SetDate(day, month, year int) error {
	field, err := t.Select(DateField)
	if err != nil {
		return err
	}
	for i := 0; i < t.RecordCount(); i++ {
		field.SetDate(i, day, month, year)
	}
	return nil
}

// SetText stores text in the column of every active record.
func (t *Table) SetText(name string, text string) error {
	field, err := t.Select(name)
	if err != nil {
		return err
	}
	for i := 0; i < t.RecordCount(); i++ {
		field.SetString(i, text)
	}
	return nil
}

// ReplaceText runs Field.ReplaceText on the column of every active record.
func (t *Table) ReplaceText(name string, old, replacement string) error {
	field, err := t.Select(name)
	if err != nil {
		return err
	}
	for i := 0; i < t.RecordCount(); i++ {
		field.ReplaceText(i, old, replacement)
	}
	return nil
}
