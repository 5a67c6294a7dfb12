package student

// KeyOf возвращает составной ключ записи: "{id}-{mail}" при наличии id,
// иначе mail. Запись без id и mail получает пустой ключ.
func KeyOf(s Student) string {
	if s.ID != "" {
		return s.ID + "-" + s.Mail
	}
	return s.Mail
}

// IdentityOf возвращает id, а при его отсутствии mail.
// Используется для проверки, перекрывает ли локальный кэш удаленную запись.
func IdentityOf(s Student) string {
	if s.ID != "" {
		return s.ID
	}
	return s.Mail
}
