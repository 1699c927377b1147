package document

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

const ContentTypePDF = "application/pdf"
