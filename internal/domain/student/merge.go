package student

// Merge склеивает последовательности в переданном порядке и оставляет по одной
// записи на составной ключ. Значение берется у последней встреченной записи,
// позиция - у первой.
func Merge(seqs ...[]Student) []Student {
	total := 0
	for _, seq := range seqs {
		total += len(seq)
	}

	out := make([]Student, 0, total)
	index := make(map[string]int, total)

	for _, seq := range seqs {
		for _, s := range seq {
			key := KeyOf(s)
			if pos, ok := index[key]; ok {
				out[pos] = s
				continue
			}
			index[key] = len(out)
			out = append(out, s)
		}
	}

	return out
}

// Duplicates возвращает составные ключи, встречающиеся больше одного раза
func Duplicates(seqs ...[]Student) []string {
	seen := make(map[string]int)
	var dups []string
	for _, seq := range seqs {
		for _, s := range seq {
			key := KeyOf(s)
			seen[key]++
			if seen[key] == 2 {
				dups = append(dups, key)
			}
		}
	}
	return dups
}

// ExcludeShadowed отбрасывает удаленные записи, чья идентичность (id или mail)
// уже есть в локальном наборе.
func ExcludeShadowed(remote, local []Student) []Student {
	shadow := make(map[string]struct{}, len(local))
	for _, s := range local {
		shadow[IdentityOf(s)] = struct{}{}
	}

	out := make([]Student, 0, len(remote))
	for _, s := range remote {
		if _, ok := shadow[IdentityOf(s)]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// WithoutID возвращает копию без записей с указанным id
func WithoutID(list []Student, id string) []Student {
	out := make([]Student, 0, len(list))
	for _, s := range list {
		if s.ID == id {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ReplaceByID заменяет записи с тем же id. Второе значение сообщает, была ли замена.
func ReplaceByID(list []Student, rec Student) ([]Student, bool) {
	out := make([]Student, len(list))
	replaced := false
	for i, s := range list {
		if s.ID == rec.ID {
			out[i] = rec
			replaced = true
			continue
		}
		out[i] = s
	}
	return out, replaced
}
