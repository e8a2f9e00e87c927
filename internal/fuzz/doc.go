// Package fuzztests houses Go fuzz harnesses for the analysis pipeline
// (text -> characters -> tokens -> phases). Every input, valid UTF-8 or not,
// must produce a result that satisfies testkit.CheckInvariants.
//
// Назначение: гонять произвольные байты через analysis и проверять
// инварианты результата.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
