package lf

import "go.uber.org/zap"

const (
	FieldModule    = "module"
	FieldRequestID = "request_id"
	FieldStudentID = "student_id"
	FieldLetter    = "letter"
	FieldDriver    = "driver"
	FieldDataBase  = "database"
	FieldCount     = "count"
	FieldStatus    = "status"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func RequestID(id string) zap.Field {
	return zap.String(FieldRequestID, id)
}

func StudentID(id string) zap.Field {
	return zap.String(FieldStudentID, id)
}

func Letter(letter string) zap.Field {
	return zap.String(FieldLetter, letter)
}

func Driver(driver string) zap.Field {
	return zap.String(FieldDriver, driver)
}

func DataBase(name string) zap.Field {
	return zap.String(FieldDataBase, name)
}

func Count(count int) zap.Field {
	return zap.Int(FieldCount, count)
}

func Status(code int) zap.Field {
	return zap.Int(FieldStatus, code)
}
