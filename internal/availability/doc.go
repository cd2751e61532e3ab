// Package availability вычисляет свободные аудитории на дату по недельным
// расписаниям и бронированиям. Все функции чистые и не обращаются к хранилищу.
package availability
